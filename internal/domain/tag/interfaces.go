package tag

import (
	"context"

	"github.com/rpggio/stowage/internal/domain/activity"
)

// Repository provides persistence for tags.
type Repository interface {
	Create(ctx context.Context, t *Tag) error
	Get(ctx context.Context, id string) (*Tag, error)
	List(ctx context.Context) ([]Tag, error)
}

// ActivityRepository logs registry changes.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
