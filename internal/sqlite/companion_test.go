package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSkillRepository(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSkillRepository(db)

	inv := "inv-1"
	require.NoError(t, repo.Create(ctx, &companion.Skill{
		ID:      "skill-1",
		Name:    "Document Search",
		Type:    companion.SkillKnowledgeRetrieval,
		Enabled: true,
		TagIDs:  []string{"tag-3", "tag-4"},
	}))
	require.NoError(t, repo.Create(ctx, &companion.Skill{
		ID:          "skill-2",
		Name:        "Event Planner",
		Type:        companion.SkillPlanning,
		InventoryID: &inv,
	}))
	require.ErrorIs(t, repo.Create(ctx, &companion.Skill{ID: "skill-1", Name: "x", Type: companion.SkillPlanning}), repository.ErrDuplicate)

	search, err := repo.Get(ctx, "skill-1")
	require.NoError(t, err)
	require.True(t, search.Enabled)
	require.Equal(t, []string{"tag-3", "tag-4"}, search.TagIDs)
	require.Empty(t, search.AssetIDs)
	require.Nil(t, search.InventoryID)

	search.Enabled = false
	search.AssetIDs = []string{"doc-1"}
	require.NoError(t, repo.Update(ctx, search))

	skills, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	require.False(t, skills[0].Enabled)
	require.Equal(t, []string{"doc-1"}, skills[0].AssetIDs)
	require.Equal(t, inv, *skills[1].InventoryID)

	require.ErrorIs(t, repo.Update(ctx, &companion.Skill{ID: "missing"}), repository.ErrNotFound)
}

func TestCompanionRepository(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCompanionRepository(db)

	require.NoError(t, repo.Create(ctx, &companion.Companion{
		ID:       "companion-1",
		Name:     "Fair Assistant",
		Avatar:   "FA",
		SkillIDs: []string{"skill-1", "skill-2"},
	}))

	got, err := repo.Get(ctx, "companion-1")
	require.NoError(t, err)
	require.Equal(t, []string{"skill-1", "skill-2"}, got.SkillIDs)

	got.SkillIDs = nil
	got.SystemPrompt = "Be helpful."
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Empty(t, list[0].SkillIDs)
	require.Equal(t, "Be helpful.", list[0].SystemPrompt)

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
