package mocks

import (
	"context"

	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/tag"
	"github.com/stretchr/testify/mock"
)

// ItemRepository is a mock for item.Repository.
type ItemRepository struct {
	mock.Mock
}

func (m *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *ItemRepository) Get(ctx context.Context, id string) (*item.Item, error) {
	args := m.Called(ctx, id)
	if it, ok := args.Get(0).(*item.Item); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *ItemRepository) Delete(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *ItemRepository) List(ctx context.Context) ([]item.Item, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]item.Item); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ItemRepository) Children(ctx context.Context, parentID *string) ([]item.Item, error) {
	args := m.Called(ctx, parentID)
	if list, ok := args.Get(0).([]item.Item); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TagRepository is a mock for tag.Repository.
type TagRepository struct {
	mock.Mock
}

func (m *TagRepository) Create(ctx context.Context, t *tag.Tag) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TagRepository) Get(ctx context.Context, id string) (*tag.Tag, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*tag.Tag); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TagRepository) List(ctx context.Context) ([]tag.Tag, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]tag.Tag); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SkillRepository is a mock for companion.SkillRepository.
type SkillRepository struct {
	mock.Mock
}

func (m *SkillRepository) Create(ctx context.Context, s *companion.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SkillRepository) Get(ctx context.Context, id string) (*companion.Skill, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*companion.Skill); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SkillRepository) Update(ctx context.Context, s *companion.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SkillRepository) List(ctx context.Context) ([]companion.Skill, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]companion.Skill); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CompanionRepository is a mock for companion.CompanionRepository.
type CompanionRepository struct {
	mock.Mock
}

func (m *CompanionRepository) Create(ctx context.Context, c *companion.Companion) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CompanionRepository) Get(ctx context.Context, id string) (*companion.Companion, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*companion.Companion); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompanionRepository) Update(ctx context.Context, c *companion.Companion) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CompanionRepository) List(ctx context.Context) ([]companion.Companion, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]companion.Companion); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
