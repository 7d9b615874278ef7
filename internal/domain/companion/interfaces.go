package companion

import (
	"context"

	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/item"
)

// SkillRepository provides persistence for skills.
type SkillRepository interface {
	Create(ctx context.Context, s *Skill) error
	Get(ctx context.Context, id string) (*Skill, error)
	Update(ctx context.Context, s *Skill) error
	List(ctx context.Context) ([]Skill, error)
}

// CompanionRepository provides persistence for companions.
type CompanionRepository interface {
	Create(ctx context.Context, c *Companion) error
	Get(ctx context.Context, id string) (*Companion, error)
	Update(ctx context.Context, c *Companion) error
	List(ctx context.Context) ([]Companion, error)
}

// ItemReader resolves the items skills refer to.
type ItemReader interface {
	Get(ctx context.Context, id string) (*item.Item, error)
}

// ActivityRepository logs companion activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
