package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `stowage keeps an asset tree of folders, documents and experience inventories, a shared tag registry, and companions whose skills point at those assets.

Core concepts:
- Item: a folder, a document (csv, xlsx, pdf or md; metadata only) or an inventory. Every item has a name, tag ids, a size and a parent folder (null = root).
- Tag: a named, colored label. Names are unique ignoring case. Items reference tags by id.
- Inventory: an item with an ordered column schema and entries validated against it.
- Visible items: the listing of one folder after tag filter (any tag matches), search (case-insensitive substring of the name) and sort. Folders always come first.

Default workflow:
1) Orient: list_visible_items with no arguments shows the root folder. list_tags resolves tag ids.
2) Drill down: list_visible_items(folder_id) or get_item_path(id) for breadcrumbs.
3) Mutate: create_folder / upload_document / create_inventory / update_item / set_item_tags / move_item / delete_item.
4) Inventories: list_entries shows schema and rows; add_entry / update_entry / delete_entry validate every write.
5) Errors come back as {"error": {code, message, details, recovery_hint}}. VALIDATION_FAILED details map each field to a message.

Docs:
- stowage://docs/index
- stowage://docs/concepts
- stowage://docs/inventories
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "stowage://docs/index",
		Name:        "docs_index",
		Title:       "stowage docs index",
		Description: "Entry point for agent-facing docs and the tool groups.",
		Content: `# stowage: Agent Docs Index

## Tool groups

- Tags: ` + "`list_tags`" + `, ` + "`create_tag`" + `.
- Tree: ` + "`create_folder`" + `, ` + "`upload_document`" + `, ` + "`create_inventory`" + `, ` + "`get_item`" + `, ` + "`update_item`" + `, ` + "`set_item_tags`" + `, ` + "`move_item`" + `, ` + "`delete_item`" + `, ` + "`list_children`" + `, ` + "`get_item_path`" + `.
- Views: ` + "`list_visible_items`" + `.
- Inventories: ` + "`list_entries`" + `, ` + "`add_entry`" + `, ` + "`update_entry`" + `, ` + "`delete_entry`" + `, ` + "`set_inventory_schema`" + `.
- Companions: ` + "`list_skills`" + `, ` + "`toggle_skill`" + `, ` + "`set_skill_assets`" + `, ` + "`toggle_skill_asset`" + `, ` + "`set_skill_inventory`" + `, ` + "`list_companions`" + `, ` + "`create_companion`" + `, ` + "`update_companion`" + `, ` + "`toggle_companion_skill`" + `.
- History: ` + "`get_recent_activity`" + `.

## Docs (read on demand)

- ` + "`stowage://docs/concepts`" + `: item kinds, tags, deletion and moves.
- ` + "`stowage://docs/inventories`" + `: column types and entry validation rules.

## Intentional limitations

- Uploads record file metadata only. No file content is stored.
- Tags cannot be renamed or deleted.
`,
	},
	{
		URI:         "stowage://docs/concepts",
		Name:        "docs_concepts",
		Title:       "Concepts and invariants",
		Description: "Item kinds, tag semantics, listing rules, deletion and moves.",
		Content: `# Concepts and invariants

## Items

- Kinds are fixed at creation: ` + "`folder`" + `, ` + "`document`" + `, ` + "`inventory`" + `.
- A parent must be an existing folder. ` + "`parent_id: null`" + ` is the root.
- Every mutation refreshes ` + "`modified_at`" + `.

## Tags

- ` + "`create_tag`" + ` rejects a name that matches an existing tag ignoring case.
- Without a color the next palette color is picked.
- ` + "`set_item_tags`" + ` replaces the item's tag ids wholesale.

## Listing

` + "`list_visible_items`" + ` applies, in order: folder scope, tag filter (an item matches if it has any selected tag), name search, sort (` + "`name`" + `, ` + "`type`" + `, ` + "`modified_at`" + `, ` + "`size`" + ` with ` + "`asc`" + ` or ` + "`desc`" + `), folders first.

## Deleting and moving

- Deleting a folder removes its direct children. Depending on server configuration the whole subtree goes. The response lists every removed id.
- ` + "`move_item`" + ` rejects moving an item into itself or into its own subfolder (` + "`MOVE_CYCLE`" + `).
`,
	},
	{
		URI:         "stowage://docs/inventories",
		Name:        "docs_inventories",
		Title:       "Inventories and entries",
		Description: "Column types, required fields and how entries are validated.",
		Content: `# Inventories and entries

## Columns

Each column has an ` + "`id`" + `, a ` + "`name`" + `, a ` + "`type`" + ` (` + "`text`" + `, ` + "`number`" + `, ` + "`date`" + `, ` + "`email`" + `, ` + "`select`" + `), ` + "`options`" + ` for select columns and a ` + "`required`" + ` flag.

## Entry validation

- Required columns reject null and empty strings: "<Column> is required".
- Email columns reject values that are not shaped like an address: "Invalid email address".
- Stored entries contain every column id (missing values become null) and nothing else.
- ` + "`update_entry`" + ` merges the given values into the entry and validates the result.

On failure the error details map column ids to messages. Nothing is written.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
