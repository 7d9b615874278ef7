package companion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/repository"
)

// Service manages skills and the companions that use them.
type Service struct {
	mu         sync.Mutex
	skills     SkillRepository
	companions CompanionRepository
	items      ItemReader
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new companion service.
func NewService(skills SkillRepository, companions CompanionRepository, items ItemReader, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{
		skills:     skills,
		companions: companions,
		items:      items,
		activities: activities,
		logger:     logger,
	}
}

// CreateSkillRequest describes a skill creation request.
type CreateSkillRequest struct {
	ID          string // optional, generated when empty
	Name        string
	Description string
	Type        SkillType
	Enabled     bool
	AssetIDs    []string
	TagIDs      []string
	InventoryID *string
}

// CreateCompanionRequest describes a companion creation request.
type CreateCompanionRequest struct {
	ID           string // optional, generated when empty
	Name         string
	Description  string
	Avatar       string
	SystemPrompt string
	SkillIDs     []string
}

// UpdateCompanionRequest describes a companion update. Nil fields are left
// unchanged.
type UpdateCompanionRequest struct {
	ID           string
	Name         *string
	Description  *string
	Avatar       *string
	SystemPrompt *string
}

// CreateSkill registers a skill.
func (s *Service) CreateSkill(ctx context.Context, req CreateSkillRequest) (*Skill, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("name", "Skill name is required").Wrap(ErrInvalidName)
	}
	if !req.Type.Valid() {
		return nil, apperr.Validation("type", fmt.Sprintf("unknown skill type %q", req.Type)).Wrap(ErrInvalidSkillType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sk := &Skill{
		ID:          req.ID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Type:        req.Type,
		Enabled:     req.Enabled,
	}
	if sk.ID == "" {
		sk.ID = uuid.NewString()
	}
	switch sk.Type {
	case SkillKnowledgeRetrieval:
		if err := s.checkAssets(ctx, req.AssetIDs); err != nil {
			return nil, err
		}
		sk.AssetIDs = unique(req.AssetIDs)
		sk.TagIDs = unique(req.TagIDs)
	case SkillPlanning:
		if err := s.checkInventory(ctx, req.InventoryID); err != nil {
			return nil, err
		}
		sk.InventoryID = req.InventoryID
	}

	if err := s.skills.Create(ctx, sk); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Validation("id", fmt.Sprintf("skill id %q already exists", sk.ID))
		}
		return nil, fmt.Errorf("creating skill: %w", err)
	}
	s.logActivity(ctx, activity.TypeSkillUpdated, fmt.Sprintf("created skill %q", sk.Name))
	return sk, nil
}

// GetSkill returns a skill by ID.
func (s *Service) GetSkill(ctx context.Context, id string) (*Skill, error) {
	sk, err := s.skills.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(ErrSkillNotFound, "skill", id)
		}
		return nil, fmt.Errorf("getting skill: %w", err)
	}
	return sk, nil
}

// ListSkills returns all skills in creation order.
func (s *Service) ListSkills(ctx context.Context) ([]Skill, error) {
	return s.skills.List(ctx)
}

// ToggleSkill flips the enabled flag of a skill.
func (s *Service) ToggleSkill(ctx context.Context, id string) (*Skill, error) {
	return s.updateSkill(ctx, id, func(sk *Skill) error {
		sk.Enabled = !sk.Enabled
		return nil
	}, "toggled")
}

// SetSkillAssets replaces the documents a knowledge-retrieval skill reads.
// Every id must name an existing item.
func (s *Service) SetSkillAssets(ctx context.Context, id string, assetIDs []string) (*Skill, error) {
	return s.updateSkill(ctx, id, func(sk *Skill) error {
		if sk.Type != SkillKnowledgeRetrieval {
			return apperr.Validation("asset_ids", "Only knowledge-retrieval skills have assets").Wrap(ErrWrongSkillType)
		}
		if err := s.checkAssets(ctx, assetIDs); err != nil {
			return err
		}
		sk.AssetIDs = unique(assetIDs)
		return nil
	}, "set assets of")
}

// ToggleSkillAsset adds assetID to a knowledge-retrieval skill, or removes it
// when already present.
func (s *Service) ToggleSkillAsset(ctx context.Context, id, assetID string) (*Skill, error) {
	return s.updateSkill(ctx, id, func(sk *Skill) error {
		if sk.Type != SkillKnowledgeRetrieval {
			return apperr.Validation("asset_id", "Only knowledge-retrieval skills have assets").Wrap(ErrWrongSkillType)
		}
		if i := slices.Index(sk.AssetIDs, assetID); i >= 0 {
			sk.AssetIDs = slices.Delete(sk.AssetIDs, i, i+1)
			return nil
		}
		if err := s.checkAssets(ctx, []string{assetID}); err != nil {
			return err
		}
		sk.AssetIDs = append(sk.AssetIDs, assetID)
		return nil
	}, "toggled asset of")
}

// SetSkillInventory points a planning skill at an inventory, or clears it
// when inventoryID is nil.
func (s *Service) SetSkillInventory(ctx context.Context, id string, inventoryID *string) (*Skill, error) {
	return s.updateSkill(ctx, id, func(sk *Skill) error {
		if sk.Type != SkillPlanning {
			return apperr.Validation("inventory_id", "Only planning skills use an inventory").Wrap(ErrWrongSkillType)
		}
		if err := s.checkInventory(ctx, inventoryID); err != nil {
			return err
		}
		sk.InventoryID = inventoryID
		return nil
	}, "set inventory of")
}

func (s *Service) updateSkill(ctx context.Context, id string, mutate func(*Skill) error, verb string) (*Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sk, err := s.GetSkill(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(sk); err != nil {
		return nil, err
	}
	if err := s.skills.Update(ctx, sk); err != nil {
		return nil, fmt.Errorf("updating skill: %w", err)
	}
	s.logActivity(ctx, activity.TypeSkillUpdated, fmt.Sprintf("%s skill %q", verb, sk.Name))
	return sk, nil
}

// CreateCompanion registers a companion. Skill ids must exist.
func (s *Service) CreateCompanion(ctx context.Context, req CreateCompanionRequest) (*Companion, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("name", "Companion name is required").Wrap(ErrInvalidName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	skillIDs := unique(req.SkillIDs)
	for _, id := range skillIDs {
		if _, err := s.GetSkill(ctx, id); err != nil {
			return nil, err
		}
	}

	c := &Companion{
		ID:           req.ID,
		Name:         name,
		Description:  strings.TrimSpace(req.Description),
		Avatar:       strings.TrimSpace(req.Avatar),
		SystemPrompt: req.SystemPrompt,
		SkillIDs:     skillIDs,
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Avatar == "" {
		c.Avatar = initials(name)
	}
	if err := s.companions.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Validation("id", fmt.Sprintf("companion id %q already exists", c.ID))
		}
		return nil, fmt.Errorf("creating companion: %w", err)
	}
	s.logActivity(ctx, activity.TypeCompanionUpdated, fmt.Sprintf("created companion %q", c.Name))
	return c, nil
}

// GetCompanion returns a companion by ID.
func (s *Service) GetCompanion(ctx context.Context, id string) (*Companion, error) {
	c, err := s.companions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(ErrCompanionNotFound, "companion", id)
		}
		return nil, fmt.Errorf("getting companion: %w", err)
	}
	return c, nil
}

// ListCompanions returns all companions in creation order.
func (s *Service) ListCompanions(ctx context.Context) ([]Companion, error) {
	return s.companions.List(ctx)
}

// UpdateCompanion edits the descriptive fields of a companion.
func (s *Service) UpdateCompanion(ctx context.Context, req UpdateCompanionRequest) (*Companion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.GetCompanion(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperr.Validation("name", "Companion name is required").Wrap(ErrInvalidName)
		}
		c.Name = name
	}
	if req.Description != nil {
		c.Description = strings.TrimSpace(*req.Description)
	}
	if req.Avatar != nil {
		c.Avatar = strings.TrimSpace(*req.Avatar)
	}
	if req.SystemPrompt != nil {
		c.SystemPrompt = *req.SystemPrompt
	}
	if err := s.companions.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating companion: %w", err)
	}
	s.logActivity(ctx, activity.TypeCompanionUpdated, fmt.Sprintf("updated companion %q", c.Name))
	return c, nil
}

// ToggleCompanionSkill attaches skillID to a companion, or detaches it when
// already attached.
func (s *Service) ToggleCompanionSkill(ctx context.Context, companionID, skillID string) (*Companion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.GetCompanion(ctx, companionID)
	if err != nil {
		return nil, err
	}
	if i := slices.Index(c.SkillIDs, skillID); i >= 0 {
		c.SkillIDs = slices.Delete(c.SkillIDs, i, i+1)
	} else {
		if _, err := s.GetSkill(ctx, skillID); err != nil {
			return nil, err
		}
		c.SkillIDs = append(c.SkillIDs, skillID)
	}
	if err := s.companions.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating companion: %w", err)
	}
	s.logActivity(ctx, activity.TypeCompanionUpdated, fmt.Sprintf("toggled skill %s on %q", skillID, c.Name))
	return c, nil
}

func (s *Service) checkAssets(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := s.items.Get(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) || errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFound(item.ErrItemNotFound, "item", id)
			}
			return fmt.Errorf("resolving asset: %w", err)
		}
	}
	return nil
}

func (s *Service) checkInventory(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	it, err := s.items.Get(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound(item.ErrInventoryNotFound, "inventory", *id)
		}
		return fmt.Errorf("resolving inventory: %w", err)
	}
	if it.Kind != item.KindInventory {
		return apperr.Validation("inventory_id", fmt.Sprintf("%q is not an inventory", it.Name)).Wrap(ErrNotInventory)
	}
	return nil
}

func (s *Service) logActivity(ctx context.Context, typ activity.Type, summary string) {
	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{Type: typ, Summary: summary})
	}
	if s.logger != nil {
		s.logger.Debug(summary)
	}
}

func unique(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r := []rune(w)
		b.WriteString(strings.ToUpper(string(r[0])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}
