package memstore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/schema"
	"github.com/rpggio/stowage/internal/domain/tag"
	"github.com/rpggio/stowage/internal/memstore"
	"github.com/rpggio/stowage/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memstore.New().Items()

	parent := "f"
	require.NoError(t, repo.Create(ctx, &item.Item{ID: "f", Name: "Folder", Kind: item.KindFolder}))
	require.NoError(t, repo.Create(ctx, &item.Item{ID: "d", Name: "Doc", Kind: item.KindDocument, ParentID: &parent}))
	require.ErrorIs(t, repo.Create(ctx, &item.Item{ID: "f"}), repository.ErrDuplicate)

	got, err := repo.Get(ctx, "d")
	require.NoError(t, err)
	require.Equal(t, "Doc", got.Name)

	got.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, got))
	require.ErrorIs(t, repo.Update(ctx, &item.Item{ID: "missing"}), repository.ErrNotFound)

	children, err := repo.Children(ctx, &parent)
	require.NoError(t, err)
	require.Len(t, children, 1)
	require.Equal(t, "Renamed", children[0].Name)

	require.NoError(t, repo.Delete(ctx, []string{"f", "d", "missing"}))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	_, err = repo.Get(ctx, "d")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestItemRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memstore.New().Items()

	inv := &item.Item{
		ID:   "inv",
		Name: "Inventory",
		Kind: item.KindInventory,
		Tags: []string{"t1"},
		Inventory: &item.Inventory{
			Schema:  schema.Schema{{ID: "c", Name: "C", Type: schema.TypeText}},
			Entries: []schema.Record{{ID: "e", Values: map[string]schema.Value{"c": schema.String("v")}}},
		},
	}
	require.NoError(t, repo.Create(ctx, inv))
	inv.Tags[0] = "changed"
	inv.Inventory.Entries[0].Values["c"] = schema.String("changed")

	got, err := repo.Get(ctx, "inv")
	require.NoError(t, err)
	require.Equal(t, []string{"t1"}, got.Tags)
	require.Equal(t, schema.String("v"), got.Inventory.Entries[0].Values["c"])

	got.Inventory.Schema[0].Name = "changed"
	again, err := repo.Get(ctx, "inv")
	require.NoError(t, err)
	require.Equal(t, "C", again.Inventory.Schema[0].Name)
}

func TestItemRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := memstore.New().Items()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, &item.Item{ID: id, Kind: item.KindFolder}))
	}
	require.NoError(t, repo.Delete(ctx, []string{"a"}))
	require.NoError(t, repo.Create(ctx, &item.Item{ID: "a", Kind: item.KindFolder}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestTagRepository(t *testing.T) {
	ctx := context.Background()
	repo := memstore.New().Tags()

	require.NoError(t, repo.Create(ctx, &tag.Tag{ID: "t1", Name: "FAQ", Color: tag.ColorCyan}))
	require.ErrorIs(t, repo.Create(ctx, &tag.Tag{ID: "t1"}), repository.ErrDuplicate)

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, "FAQ", got.Name)

	_, err = repo.Get(ctx, "t2")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityRepository_NewestFirstWithFilters(t *testing.T) {
	ctx := context.Background()
	repo := memstore.New().Activity()
	itemID := "i1"

	require.NoError(t, repo.Log(ctx, &activity.Entry{Type: activity.TypeItemCreated, ItemID: &itemID}))
	require.NoError(t, repo.Log(ctx, &activity.Entry{Type: activity.TypeTagCreated}))
	require.NoError(t, repo.Log(ctx, &activity.Entry{Type: activity.TypeItemUpdated, ItemID: &itemID}))

	all, err := repo.List(ctx, activity.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, int64(3), all[0].ID)
	require.False(t, all[0].CreatedAt.IsZero())

	forItem, err := repo.List(ctx, activity.ListOptions{ItemID: &itemID, Limit: 1})
	require.NoError(t, err)
	require.Len(t, forItem, 1)
	require.Equal(t, activity.TypeItemUpdated, forItem[0].Type)

	typ := activity.TypeTagCreated
	tags, err := repo.List(ctx, activity.ListOptions{Type: &typ})
	require.NoError(t, err)
	require.Len(t, tags, 1)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := item.NewService(store.Items(), store.Activity(), nil, item.Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_, err := svc.Create(ctx, item.CreateRequest{Kind: item.KindFolder, Name: "F"})
				assert.NoError(t, err)
				_, err = svc.List(ctx)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 200)
}
