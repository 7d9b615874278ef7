package memstore

import (
	"context"

	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/repository"
)

// ItemRepository implements item.Repository.
type ItemRepository struct {
	s *Store
}

func (r *ItemRepository) Create(_ context.Context, it *item.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.items.insert(it.ID, it.Clone()) {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *ItemRepository) Get(_ context.Context, id string) (*item.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.items.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := row.Clone()
	return &out, nil
}

func (r *ItemRepository) Update(_ context.Context, it *item.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.items.replace(it.ID, it.Clone()) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(_ context.Context, ids []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items.remove(ids)
	return nil
}

func (r *ItemRepository) List(_ context.Context) ([]item.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.items.all()
	out := make([]item.Item, len(rows))
	for i, row := range rows {
		out[i] = row.Clone()
	}
	return out, nil
}

func (r *ItemRepository) Children(_ context.Context, parentID *string) ([]item.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []item.Item
	for _, row := range r.s.items.all() {
		if row.InParent(parentID) {
			out = append(out, row.Clone())
		}
	}
	return out, nil
}
