package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/stowage/internal/config"
	"github.com/rpggio/stowage/internal/testserver"
)

func emptyStore() config.Config {
	cfg := config.Default()
	cfg.Seed = false
	return cfg
}

type itemJSON struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Tags     []string `json:"tags"`
	ParentID *string  `json:"parent_id"`
}

type listingJSON struct {
	Items []itemJSON `json:"items"`
	Count int        `json:"count"`
}

func TestServer_ListsEveryTool(t *testing.T) {
	ts := testserver.New(t, emptyStore())

	result, err := ts.Session.ListTools(context.Background(), &sdkmcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	require.Contains(t, names, "list_visible_items")
	require.Contains(t, names, "add_entry")
	require.Contains(t, names, "toggle_companion_skill")
	require.Len(t, names, 28)
}

func TestServer_ReadsDocResources(t *testing.T) {
	ts := testserver.New(t, emptyStore())

	result, err := ts.Session.ReadResource(context.Background(), &sdkmcp.ReadResourceParams{URI: "stowage://docs/inventories"})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	require.Contains(t, result.Contents[0].Text, "Invalid email address")
}

func TestServer_SeededRootView(t *testing.T) {
	ts := testserver.New(t, config.Default())

	var root listingJSON
	ts.MustCall(t, "list_visible_items", map[string]any{}, &root)
	require.Equal(t, 8, root.Count)
	require.Equal(t, "folder", root.Items[0].Kind)
	require.Equal(t, "folder", root.Items[1].Kind)

	var desc listingJSON
	ts.MustCall(t, "list_visible_items", map[string]any{"sort_field": "name", "direction": "desc"}, &desc)
	require.Equal(t, "folder", desc.Items[0].Kind)
	require.Equal(t, root.Items[1].Name, desc.Items[0].Name)
}

func TestServer_TagFilterFlow(t *testing.T) {
	ts := testserver.New(t, emptyStore())

	var boats, events struct {
		ID string `json:"id"`
	}
	ts.MustCall(t, "create_tag", map[string]any{"name": "Boats"}, &boats)
	ts.MustCall(t, "create_tag", map[string]any{"name": "Events"}, &events)

	ts.MustCall(t, "create_folder", map[string]any{"name": "Fleet", "tags": []string{boats.ID}}, nil)
	ts.MustCall(t, "upload_document", map[string]any{"file_name": "show.md", "size": 120, "tags": []string{events.ID}}, nil)
	ts.MustCall(t, "upload_document", map[string]any{"file_name": "untagged.csv", "size": 5}, nil)

	var filtered listingJSON
	ts.MustCall(t, "list_visible_items", map[string]any{"tag_ids": []string{boats.ID, events.ID}}, &filtered)
	require.Equal(t, 2, filtered.Count)
	require.Equal(t, "Fleet", filtered.Items[0].Name)
	require.Equal(t, "show.md", filtered.Items[1].Name)
}

func TestServer_ToolErrorsAreResults(t *testing.T) {
	ts := testserver.New(t, emptyStore())

	raw, isError := ts.CallTool(t, "get_item", map[string]any{"id": "missing"})
	require.True(t, isError)

	var payload struct {
		Error struct {
			Code         string `json:"code"`
			RecoveryHint string `json:"recovery_hint"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Equal(t, "ITEM_NOT_FOUND", payload.Error.Code)
	require.NotEmpty(t, payload.Error.RecoveryHint)
}

func TestServer_SkillInventoryFlow(t *testing.T) {
	ts := testserver.New(t, config.Default())

	var skill struct {
		ID          string  `json:"id"`
		InventoryID *string `json:"inventory_id"`
	}
	ts.MustCall(t, "set_skill_inventory", map[string]any{"id": "skill-2", "inventory_id": "inv-2"}, &skill)
	require.NotNil(t, skill.InventoryID)
	require.Equal(t, "inv-2", *skill.InventoryID)

	_, isError := ts.CallTool(t, "set_skill_inventory", map[string]any{"id": "skill-2", "inventory_id": "folder-1"})
	require.True(t, isError)
}
