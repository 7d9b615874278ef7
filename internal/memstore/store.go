// Package memstore is the default in-memory backend. All collections share a
// single lock, so every repository call sees one consistent state, and values
// are copied on the way in and out.
package memstore

import (
	"slices"
	"sync"

	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/tag"
)

// Store holds every collection of the application.
type Store struct {
	mu sync.RWMutex

	items      *table[item.Item]
	tags       *table[tag.Tag]
	skills     *table[companion.Skill]
	companions *table[companion.Companion]
	activity   []activity.Entry
	nextAct    int64
}

// New creates an empty store.
func New() *Store {
	return &Store{
		items:      newTable[item.Item](),
		tags:       newTable[tag.Tag](),
		skills:     newTable[companion.Skill](),
		companions: newTable[companion.Companion](),
	}
}

// Items returns the item repository backed by s.
func (s *Store) Items() *ItemRepository { return &ItemRepository{s: s} }

// Tags returns the tag repository backed by s.
func (s *Store) Tags() *TagRepository { return &TagRepository{s: s} }

// Activity returns the activity repository backed by s.
func (s *Store) Activity() *ActivityRepository { return &ActivityRepository{s: s} }

// Skills returns the skill repository backed by s.
func (s *Store) Skills() *SkillRepository { return &SkillRepository{s: s} }

// Companions returns the companion repository backed by s.
func (s *Store) Companions() *CompanionRepository { return &CompanionRepository{s: s} }

// table keeps rows by id and remembers insertion order.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) insert(id string, row T) bool {
	if _, exists := t.rows[id]; exists {
		return false
	}
	t.rows[id] = row
	t.order = append(t.order, id)
	return true
}

func (t *table[T]) replace(id string, row T) bool {
	if _, exists := t.rows[id]; !exists {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *table[T]) remove(ids []string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := t.rows[id]; ok {
			drop[id] = struct{}{}
			delete(t.rows, id)
		}
	}
	if len(drop) == 0 {
		return
	}
	t.order = slices.DeleteFunc(t.order, func(id string) bool {
		_, gone := drop[id]
		return gone
	})
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}
