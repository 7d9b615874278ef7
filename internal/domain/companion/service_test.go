package companion_test

import (
	"context"
	"testing"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/schema"
	"github.com/rpggio/stowage/internal/memstore"
	"github.com/rpggio/stowage/internal/repository"
	"github.com/rpggio/stowage/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc   *companion.Service
	items *item.Service
	doc   *item.Item
	inv   *item.Item
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	items := item.NewService(store.Items(), store.Activity(), nil, item.Options{})

	doc, err := items.Upload(ctx, item.UploadRequest{FileName: "Venue Map.pdf", Size: 100})
	require.NoError(t, err)
	inv, err := items.Create(ctx, item.CreateRequest{
		Kind:    item.KindInventory,
		Name:    "Fair Event Programs",
		Columns: []schema.Column{{Name: "Program Name", Type: schema.TypeText}},
	})
	require.NoError(t, err)

	svc := companion.NewService(store.Skills(), store.Companions(), store.Items(), store.Activity(), nil)
	return fixture{svc: svc, items: items, doc: doc, inv: inv}
}

func TestCompanionService_CreateSkill(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	search, err := f.svc.CreateSkill(ctx, companion.CreateSkillRequest{
		Name:     "Document Search",
		Type:     companion.SkillKnowledgeRetrieval,
		Enabled:  true,
		AssetIDs: []string{f.doc.ID, f.doc.ID},
	})
	require.NoError(t, err)
	require.Equal(t, []string{f.doc.ID}, search.AssetIDs)

	_, err = f.svc.CreateSkill(ctx, companion.CreateSkillRequest{Name: "Bad", Type: "telepathy"})
	require.ErrorIs(t, err, companion.ErrInvalidSkillType)

	_, err = f.svc.CreateSkill(ctx, companion.CreateSkillRequest{
		Name:     "Stale",
		Type:     companion.SkillKnowledgeRetrieval,
		AssetIDs: []string{"missing"},
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.svc.CreateSkill(ctx, companion.CreateSkillRequest{
		Name:        "Planner",
		Type:        companion.SkillPlanning,
		InventoryID: &f.doc.ID,
	})
	require.ErrorIs(t, err, companion.ErrNotInventory)
}

func TestCompanionService_ToggleSkill(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sk, err := f.svc.CreateSkill(ctx, companion.CreateSkillRequest{Name: "Planner", Type: companion.SkillPlanning, Enabled: true})
	require.NoError(t, err)

	toggled, err := f.svc.ToggleSkill(ctx, sk.ID)
	require.NoError(t, err)
	require.False(t, toggled.Enabled)

	_, err = f.svc.ToggleSkill(ctx, "missing")
	require.ErrorIs(t, err, companion.ErrSkillNotFound)
}

func TestCompanionService_SkillConfig(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	planner, err := f.svc.CreateSkill(ctx, companion.CreateSkillRequest{Name: "Planner", Type: companion.SkillPlanning})
	require.NoError(t, err)
	search, err := f.svc.CreateSkill(ctx, companion.CreateSkillRequest{Name: "Search", Type: companion.SkillKnowledgeRetrieval})
	require.NoError(t, err)

	updated, err := f.svc.SetSkillInventory(ctx, planner.ID, &f.inv.ID)
	require.NoError(t, err)
	require.Equal(t, f.inv.ID, *updated.InventoryID)

	cleared, err := f.svc.SetSkillInventory(ctx, planner.ID, nil)
	require.NoError(t, err)
	require.Nil(t, cleared.InventoryID)

	_, err = f.svc.SetSkillAssets(ctx, planner.ID, []string{f.doc.ID})
	require.ErrorIs(t, err, companion.ErrWrongSkillType)

	withAsset, err := f.svc.ToggleSkillAsset(ctx, search.ID, f.doc.ID)
	require.NoError(t, err)
	require.Equal(t, []string{f.doc.ID}, withAsset.AssetIDs)

	without, err := f.svc.ToggleSkillAsset(ctx, search.ID, f.doc.ID)
	require.NoError(t, err)
	require.Empty(t, without.AssetIDs)

	replaced, err := f.svc.SetSkillAssets(ctx, search.ID, []string{f.doc.ID, f.inv.ID})
	require.NoError(t, err)
	require.Equal(t, []string{f.doc.ID, f.inv.ID}, replaced.AssetIDs)
}

func TestCompanionService_Companions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sk, err := f.svc.CreateSkill(ctx, companion.CreateSkillRequest{Name: "Search", Type: companion.SkillKnowledgeRetrieval})
	require.NoError(t, err)

	c, err := f.svc.CreateCompanion(ctx, companion.CreateCompanionRequest{Name: "Fair Assistant"})
	require.NoError(t, err)
	require.Equal(t, "FA", c.Avatar)
	require.Empty(t, c.SkillIDs)

	c, err = f.svc.ToggleCompanionSkill(ctx, c.ID, sk.ID)
	require.NoError(t, err)
	require.Equal(t, []string{sk.ID}, c.SkillIDs)

	c, err = f.svc.ToggleCompanionSkill(ctx, c.ID, sk.ID)
	require.NoError(t, err)
	require.Empty(t, c.SkillIDs)

	_, err = f.svc.ToggleCompanionSkill(ctx, c.ID, "missing")
	require.ErrorIs(t, err, companion.ErrSkillNotFound)

	prompt := "You are a helpful assistant."
	blank := " "
	updated, err := f.svc.UpdateCompanion(ctx, companion.UpdateCompanionRequest{ID: c.ID, SystemPrompt: &prompt})
	require.NoError(t, err)
	require.Equal(t, prompt, updated.SystemPrompt)
	require.Equal(t, "Fair Assistant", updated.Name)

	_, err = f.svc.UpdateCompanion(ctx, companion.UpdateCompanionRequest{ID: c.ID, Name: &blank})
	require.ErrorIs(t, err, companion.ErrInvalidName)

	_, err = f.svc.CreateCompanion(ctx, companion.CreateCompanionRequest{Name: "Ghost", SkillIDs: []string{"missing"}})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := f.svc.ListCompanions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCompanionService_GetCompanion_NotFound(t *testing.T) {
	ctx := context.Background()
	companionsRepo := &mocks.CompanionRepository{}
	companionsRepo.On("Get", ctx, "c1").Return(nil, repository.ErrNotFound)

	svc := companion.NewService(&mocks.SkillRepository{}, companionsRepo, &mocks.ItemRepository{}, nil, nil)
	_, err := svc.GetCompanion(ctx, "c1")
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.ErrorIs(t, err, companion.ErrCompanionNotFound)
	companionsRepo.AssertExpectations(t)
}

func TestCompanionService_UpdateCompanion_PersistsOnce(t *testing.T) {
	ctx := context.Background()
	companionsRepo := &mocks.CompanionRepository{}
	companionsRepo.On("Get", ctx, "c1").Return(&companion.Companion{ID: "c1", Name: "Old"}, nil)
	companionsRepo.On("Update", ctx, mock.MatchedBy(func(c *companion.Companion) bool {
		return c.Name == "New"
	})).Return(nil).Once()

	svc := companion.NewService(&mocks.SkillRepository{}, companionsRepo, &mocks.ItemRepository{}, nil, nil)
	name := "New"
	_, err := svc.UpdateCompanion(ctx, companion.UpdateCompanionRequest{ID: "c1", Name: &name})
	require.NoError(t, err)
	companionsRepo.AssertExpectations(t)
}
