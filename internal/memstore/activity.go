package memstore

import (
	"context"
	"time"

	"github.com/rpggio/stowage/internal/domain/activity"
)

// ActivityRepository implements activity.Repository.
type ActivityRepository struct {
	s *Store
}

func (r *ActivityRepository) Log(_ context.Context, entry *activity.Entry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextAct++
	entry.ID = r.s.nextAct
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	row := *entry
	if entry.ItemID != nil {
		id := *entry.ItemID
		row.ItemID = &id
	}
	r.s.activity = append(r.s.activity, row)
	return nil
}

// List returns matching entries, newest first.
func (r *ActivityRepository) List(_ context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []activity.Entry
	for i := len(r.s.activity) - 1; i >= 0; i-- {
		e := r.s.activity[i]
		if opts.ItemID != nil && (e.ItemID == nil || *e.ItemID != *opts.ItemID) {
			continue
		}
		if opts.Type != nil && e.Type != *opts.Type {
			continue
		}
		out = append(out, e)
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}
