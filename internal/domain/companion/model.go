package companion

// SkillType is the behavior a skill contributes to a companion.
type SkillType string

const (
	SkillKnowledgeRetrieval SkillType = "knowledge-retrieval"
	SkillPlanning           SkillType = "planning"
)

// Valid reports whether t is a known skill type.
func (t SkillType) Valid() bool {
	return t == SkillKnowledgeRetrieval || t == SkillPlanning
}

// Skill is a capability companions can use. Knowledge-retrieval skills draw
// on AssetIDs and TagIDs; planning skills on a single inventory.
type Skill struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Type        SkillType `json:"type" yaml:"type"`
	Enabled     bool      `json:"enabled" yaml:"enabled"`
	AssetIDs    []string  `json:"asset_ids,omitempty" yaml:"asset_ids,omitempty"`
	TagIDs      []string  `json:"tag_ids,omitempty" yaml:"tag_ids,omitempty"`
	InventoryID *string   `json:"inventory_id,omitempty" yaml:"inventory_id,omitempty"`
}

// Clone returns a deep copy of s.
func (s Skill) Clone() Skill {
	out := s
	out.AssetIDs = append([]string(nil), s.AssetIDs...)
	out.TagIDs = append([]string(nil), s.TagIDs...)
	if s.InventoryID != nil {
		id := *s.InventoryID
		out.InventoryID = &id
	}
	return out
}

// Companion is an assistant persona with a set of skills.
type Companion struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Avatar       string   `json:"avatar" yaml:"avatar"`
	SystemPrompt string   `json:"system_prompt" yaml:"system_prompt"`
	SkillIDs     []string `json:"skill_ids" yaml:"skill_ids"`
}

// Clone returns a deep copy of c.
func (c Companion) Clone() Companion {
	out := c
	out.SkillIDs = append([]string{}, c.SkillIDs...)
	return out
}
