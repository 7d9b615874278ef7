package memstore

import (
	"context"

	"github.com/rpggio/stowage/internal/domain/tag"
	"github.com/rpggio/stowage/internal/repository"
)

// TagRepository implements tag.Repository.
type TagRepository struct {
	s *Store
}

func (r *TagRepository) Create(_ context.Context, t *tag.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.tags.insert(t.ID, *t) {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *TagRepository) Get(_ context.Context, id string) (*tag.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.tags.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *TagRepository) List(_ context.Context) ([]tag.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.tags.all(), nil
}
