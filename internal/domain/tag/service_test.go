package tag_test

import (
	"context"
	"testing"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/tag"
	"github.com/rpggio/stowage/internal/memstore"
	"github.com/rpggio/stowage/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService() *tag.Service {
	store := memstore.New()
	return tag.NewService(store.Tags(), store.Activity(), nil)
}

func TestTagService_Create(t *testing.T) {
	ctx := context.Background()
	tagsRepo := &mocks.TagRepository{}
	activitiesRepo := &mocks.ActivityRepository{}

	tagsRepo.On("List", ctx).Return([]tag.Tag{}, nil)
	tagsRepo.On("Create", ctx, mock.Anything).Return(nil)
	activitiesRepo.On("Log", ctx, mock.MatchedBy(func(e *activity.Entry) bool {
		return e.Type == activity.TypeTagCreated
	})).Return(nil)

	svc := tag.NewService(tagsRepo, activitiesRepo, nil)
	created, err := svc.Create(ctx, tag.CreateRequest{Name: " FAQ ", Color: tag.ColorCyan})
	require.NoError(t, err)
	require.Equal(t, "FAQ", created.Name)
	require.Equal(t, tag.ColorCyan, created.Color)
	require.NotEmpty(t, created.ID)
	tagsRepo.AssertExpectations(t)
	activitiesRepo.AssertExpectations(t)
}

func TestTagService_Create_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, tag.CreateRequest{Name: "  "})
	require.ErrorIs(t, err, apperr.ErrValidation)
	require.ErrorIs(t, err, tag.ErrInvalidName)

	_, err = svc.Create(ctx, tag.CreateRequest{Name: "X", Color: "teal"})
	require.ErrorIs(t, err, tag.ErrInvalidColor)
	require.Contains(t, apperr.FieldErrors(err), "color")

	tags, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestTagService_Create_RejectsFoldedDuplicate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, tag.CreateRequest{Name: "Boat Manual"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, tag.CreateRequest{Name: "BOAT manual"})
	require.ErrorIs(t, err, apperr.ErrValidation)
	require.ErrorIs(t, err, tag.ErrDuplicateName)
}

func TestTagService_Create_DistinctIDsAndPaletteColors(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		created, err := svc.Create(ctx, tag.CreateRequest{Name: string(rune('a' + i))})
		require.NoError(t, err)
		require.Equal(t, tag.Palette[i%len(tag.Palette)], created.Color)
		_, dup := seen[created.ID]
		require.False(t, dup)
		seen[created.ID] = struct{}{}
	}
}

func TestTagService_Ensure(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	first, err := svc.Ensure(ctx, "Registration", tag.ColorRose)
	require.NoError(t, err)
	again, err := svc.Ensure(ctx, "registration", "")
	require.NoError(t, err)
	require.Equal(t, first.ID, again.ID)

	tags, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
}

func TestTagService_FindByIDs(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	a, err := svc.Create(ctx, tag.CreateRequest{ID: "tag-1", Name: "Fair Program"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, tag.CreateRequest{ID: "tag-2", Name: "Exhibitor"})
	require.NoError(t, err)

	found, err := svc.FindByIDs(ctx, []string{b.ID, "stale", a.ID})
	require.NoError(t, err)
	require.Equal(t, []string{"tag-1", "tag-2"}, []string{found[0].ID, found[1].ID})

	_, err = svc.Get(ctx, "stale")
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.ErrorIs(t, err, tag.ErrTagNotFound)
}
