package activity

import "time"

// Type represents the kind of mutation recorded
type Type string

const (
	TypeItemCreated      Type = "item_created"
	TypeItemUpdated      Type = "item_updated"
	TypeItemMoved        Type = "item_moved"
	TypeItemDeleted      Type = "item_deleted"
	TypeTagsSet          Type = "tags_set"
	TypeEntryAdded       Type = "entry_added"
	TypeEntryUpdated     Type = "entry_updated"
	TypeEntryDeleted     Type = "entry_deleted"
	TypeTagCreated       Type = "tag_created"
	TypeSkillUpdated     Type = "skill_updated"
	TypeCompanionUpdated Type = "companion_updated"
)

// Entry represents an event in the activity log
type Entry struct {
	ID        int64     `json:"id"`
	ItemID    *string   `json:"item_id,omitempty"`
	Type      Type      `json:"type"`
	Summary   string    `json:"summary"`
	Details   string    `json:"details,omitempty"` // JSON string
	CreatedAt time.Time `json:"created_at"`
}
