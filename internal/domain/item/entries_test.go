package item_test

import (
	"context"
	"testing"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/schema"
	"github.com/stretchr/testify/require"
)

func newInventory(t *testing.T, svc *item.Service) *item.Item {
	t.Helper()
	return mustCreate(t, svc, item.CreateRequest{
		Kind: item.KindInventory,
		Name: "Exhibitor Directory",
		Columns: []schema.Column{
			{ID: "name", Name: "Company Name", Type: schema.TypeText, Required: true},
			{ID: "email", Name: "Contact Email", Type: schema.TypeEmail},
			{ID: "booth", Name: "Booth Number", Type: schema.TypeText},
		},
	})
}

func TestEntries_RequiredColumn(t *testing.T) {
	svc, _ := newService(t, item.CascadeShallow)
	ctx := context.Background()
	inv := newInventory(t, svc)

	_, err := svc.AddEntry(ctx, inv.ID, map[string]schema.Value{"booth": schema.String("A1")})
	require.ErrorIs(t, err, apperr.ErrValidation)
	require.Equal(t, "Company Name is required", apperr.FieldErrors(err)["name"])

	entries, err := svc.ListEntries(ctx, inv.ID)
	require.NoError(t, err)
	require.Empty(t, entries)

	rec, err := svc.AddEntry(ctx, inv.ID, map[string]schema.Value{"name": schema.String("Saxdor")})
	require.NoError(t, err)
	require.Equal(t, schema.String("Saxdor"), rec.Values["name"])
}

func TestEntries_EmailFormat(t *testing.T) {
	svc, _ := newService(t, item.CascadeShallow)
	ctx := context.Background()
	inv := newInventory(t, svc)

	_, err := svc.AddEntry(ctx, inv.ID, map[string]schema.Value{
		"name":  schema.String("Acme"),
		"email": schema.String("not-an-email"),
	})
	require.Equal(t, "Invalid email address", apperr.FieldErrors(err)["email"])

	_, err = svc.AddEntry(ctx, inv.ID, map[string]schema.Value{"name": schema.String("Acme"), "email": schema.String("a@b.com")})
	require.NoError(t, err)

	_, err = svc.AddEntry(ctx, inv.ID, map[string]schema.Value{"name": schema.String("Acme"), "email": schema.String("")})
	require.NoError(t, err)
}

func TestEntries_NormalizedAndUnique(t *testing.T) {
	svc, _ := newService(t, item.CascadeShallow)
	ctx := context.Background()
	inv := newInventory(t, svc)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		rec, err := svc.AddEntry(ctx, inv.ID, map[string]schema.Value{
			"name":  schema.String("Acme"),
			"extra": schema.String("dropped"),
		})
		require.NoError(t, err)
		require.Len(t, rec.Values, 3)
		require.NotContains(t, rec.Values, "extra")
		require.Equal(t, schema.Null(), rec.Values["email"])
		_, dup := seen[rec.ID]
		require.False(t, dup)
		seen[rec.ID] = struct{}{}
	}

	after, err := svc.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.True(t, after.ModifiedAt.After(inv.ModifiedAt))
	require.Len(t, after.Inventory.Entries, 20)
}

func TestEntries_UpdateMergesAndRevalidates(t *testing.T) {
	svc, _ := newService(t, item.CascadeShallow)
	ctx := context.Background()
	inv := newInventory(t, svc)

	rec, err := svc.AddEntry(ctx, inv.ID, map[string]schema.Value{
		"name":  schema.String("Acme"),
		"booth": schema.String("A1"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEntry(ctx, inv.ID, rec.ID, map[string]schema.Value{"booth": schema.String("B7")})
	require.NoError(t, err)
	require.Equal(t, rec.ID, updated.ID)
	require.Equal(t, schema.String("Acme"), updated.Values["name"])
	require.Equal(t, schema.String("B7"), updated.Values["booth"])

	_, err = svc.UpdateEntry(ctx, inv.ID, rec.ID, map[string]schema.Value{"name": schema.Null()})
	require.ErrorIs(t, err, apperr.ErrValidation)

	entries, err := svc.ListEntries(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, schema.String("Acme"), entries[0].Values["name"])
}

func TestEntries_Delete(t *testing.T) {
	svc, _ := newService(t, item.CascadeShallow)
	ctx := context.Background()
	inv := newInventory(t, svc)

	first, err := svc.AddEntry(ctx, inv.ID, map[string]schema.Value{"name": schema.String("One")})
	require.NoError(t, err)
	second, err := svc.AddEntry(ctx, inv.ID, map[string]schema.Value{"name": schema.String("Two")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, inv.ID, first.ID))
	entries, err := svc.ListEntries(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, second.ID, entries[0].ID)

	err = svc.DeleteEntry(ctx, inv.ID, first.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.ErrorIs(t, err, item.ErrEntryNotFound)
}

func TestEntries_UnknownInventory(t *testing.T) {
	svc, _ := newService(t, item.CascadeShallow)
	ctx := context.Background()
	f := mustCreate(t, svc, folder("Folder", nil))

	_, err := svc.AddEntry(ctx, "missing", nil)
	require.ErrorIs(t, err, item.ErrInventoryNotFound)

	_, err = svc.ListEntries(ctx, f.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.ErrorIs(t, err, item.ErrInventoryNotFound)

	inv := newInventory(t, svc)
	_, err = svc.UpdateEntry(ctx, inv.ID, "missing", nil)
	require.ErrorIs(t, err, item.ErrEntryNotFound)
}

func TestEntries_SetSchemaKeepsEntries(t *testing.T) {
	svc, _ := newService(t, item.CascadeShallow)
	ctx := context.Background()
	inv := newInventory(t, svc)
	rec, err := svc.AddEntry(ctx, inv.ID, map[string]schema.Value{"name": schema.String("Acme")})
	require.NoError(t, err)

	changed, err := svc.SetSchema(ctx, inv.ID, []schema.Column{
		{ID: "name", Name: "Company Name", Type: schema.TypeText, Required: true},
		{ID: "size", Name: "Booth Size", Type: schema.TypeSelect, Options: []string{"Small", "Large"}, Required: true},
	})
	require.NoError(t, err)
	require.Len(t, changed.Inventory.Schema, 2)
	require.Len(t, changed.Inventory.Entries, 1)

	_, err = svc.UpdateEntry(ctx, inv.ID, rec.ID, map[string]schema.Value{"name": schema.String("Acme Marine")})
	require.Equal(t, "Booth Size is required", apperr.FieldErrors(err)["size"])
}

func TestEntries_InitialEntriesOnCreate(t *testing.T) {
	svc, _ := newService(t, item.CascadeShallow)
	ctx := context.Background()
	columns := []schema.Column{{ID: "name", Name: "Company Name", Type: schema.TypeText, Required: true}}

	inv, err := svc.Create(ctx, item.CreateRequest{
		Kind:    item.KindInventory,
		Name:    "Directory",
		Columns: columns,
		Entries: []map[string]schema.Value{
			{"name": schema.String("Saxdor Yachts")},
			{"name": schema.String("Mercury Marine")},
		},
	})
	require.NoError(t, err)
	require.Len(t, inv.Inventory.Entries, 2)
	require.NotEqual(t, inv.Inventory.Entries[0].ID, inv.Inventory.Entries[1].ID)

	_, err = svc.Create(ctx, item.CreateRequest{
		Kind:    item.KindInventory,
		Name:    "Broken",
		Columns: columns,
		Entries: []map[string]schema.Value{{"name": schema.Null()}},
	})
	require.ErrorIs(t, err, apperr.ErrValidation)
	require.ErrorContains(t, err, "entry 1")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
