package tag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/repository"
)

// Service is the tag registry.
type Service struct {
	mu         sync.Mutex
	tags       Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new tag registry service.
func NewService(tags Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{tags: tags, activities: activities, logger: logger}
}

// CreateRequest describes a tag creation request. An empty Color picks the
// next palette color.
type CreateRequest struct {
	ID    string // optional, generated when empty
	Name  string
	Color Color
}

// Create registers a new tag. Names are unique case-insensitively.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Tag, error) {
	name, err := ValidateCreateInput(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	if found := findByName(existing, name); found != nil {
		return nil, apperr.Validation("name", fmt.Sprintf("tag %q already exists", found.Name)).Wrap(ErrDuplicateName)
	}

	return s.create(ctx, req.ID, name, req.Color, len(existing))
}

// Ensure returns the tag whose name matches case-insensitively, creating it
// when none exists.
func (s *Service) Ensure(ctx context.Context, name string, color Color) (*Tag, error) {
	trimmed, err := ValidateCreateInput(CreateRequest{Name: name, Color: color})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	if found := findByName(existing, trimmed); found != nil {
		return found, nil
	}
	return s.create(ctx, "", trimmed, color, len(existing))
}

func (s *Service) create(ctx context.Context, id, name string, color Color, count int) (*Tag, error) {
	if color == "" {
		color = Palette[count%len(Palette)]
	}
	if id == "" {
		id = uuid.NewString()
	}
	t := &Tag{
		ID:    id,
		Name:  name,
		Color: color,
	}
	if err := s.tags.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Validation("id", fmt.Sprintf("tag id %q already exists", id)).Wrap(ErrDuplicateName)
		}
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			Type:    activity.TypeTagCreated,
			Summary: fmt.Sprintf("created tag %q", t.Name),
		})
	}
	if s.logger != nil {
		s.logger.Debug("tag created", "id", t.ID, "name", t.Name, "color", t.Color)
	}
	return t, nil
}

// Get returns a tag by ID.
func (s *Service) Get(ctx context.Context, id string) (*Tag, error) {
	t, err := s.tags.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(ErrTagNotFound, "tag", id)
		}
		return nil, fmt.Errorf("getting tag: %w", err)
	}
	return t, nil
}

// List returns all tags in insertion order.
func (s *Service) List(ctx context.Context) ([]Tag, error) {
	return s.tags.List(ctx)
}

// FindByIDs returns the tags named by ids in registry order. Unknown ids are
// dropped.
func (s *Service) FindByIDs(ctx context.Context, ids []string) ([]Tag, error) {
	all, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]Tag, 0, len(ids))
	for _, t := range all {
		if _, ok := wanted[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func findByName(tags []Tag, name string) *Tag {
	folded := FoldName(name)
	for i := range tags {
		if FoldName(tags[i].Name) == folded {
			t := tags[i]
			return &t
		}
	}
	return nil
}
