package item

import (
	"context"

	"github.com/rpggio/stowage/internal/domain/activity"
)

// Repository provides persistence for items. Every method is atomic with
// respect to the others.
type Repository interface {
	Create(ctx context.Context, it *Item) error
	Get(ctx context.Context, id string) (*Item, error)
	Update(ctx context.Context, it *Item) error
	// Delete removes all ids in one step; unknown ids are ignored.
	Delete(ctx context.Context, ids []string) error
	// List returns every item in insertion order.
	List(ctx context.Context) ([]Item, error)
	// Children returns the direct children of parentID (nil = root).
	Children(ctx context.Context, parentID *string) ([]Item, error)
}

// ActivityRepository logs item activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
