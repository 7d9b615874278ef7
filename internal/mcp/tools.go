package mcp

var columnsSchema = map[string]any{
	"type":        "array",
	"description": "Ordered column definitions. Columns with a blank name are dropped; at least one must remain.",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "string", "description": "Column id (generated when omitted)"},
			"name":     map[string]any{"type": "string"},
			"type":     map[string]any{"type": "string", "enum": []string{"text", "number", "date", "email", "select"}},
			"options":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Choices for select columns"},
			"required": map[string]any{"type": "boolean"},
		},
		"required": []string{"name", "type"},
	},
}

var entryValuesSchema = map[string]any{
	"type":                 "object",
	"description":          "Cell values keyed by column id. Values are strings, numbers or null.",
	"additionalProperties": map[string]any{"type": []string{"string", "number", "null"}},
}

var tagIDsSchema = map[string]any{
	"type":        "array",
	"items":       map[string]any{"type": "string"},
	"description": "Tag ids from list_tags",
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Tags
		{
			Name:        "list_tags",
			Description: "List every tag in the registry, in creation order",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "create_tag",
			Description: "Create a tag. Names are unique ignoring case",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Tag display name",
					},
					"color": map[string]any{
						"type":        "string",
						"enum":        []string{"violet", "blue", "cyan", "emerald", "amber", "rose", "pink", "orange"},
						"description": "Palette color (omit to pick the next one)",
					},
				},
				"required": []string{"name"},
			},
		},

		// Tree
		{
			Name:        "create_folder",
			Description: "Create a folder at the root or inside another folder",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":      map[string]any{"type": "string", "description": "Folder name"},
					"parent_id": map[string]any{"type": "string", "description": "Parent folder id (omit for root)"},
					"tags":      tagIDsSchema,
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "upload_document",
			Description: "Record an uploaded document. Only .csv, .xlsx, .pdf and .md files are accepted; no content is stored",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"file_name": map[string]any{"type": "string", "description": "File name including extension"},
					"size":      map[string]any{"type": "integer", "minimum": 0, "description": "File size in bytes"},
					"parent_id": map[string]any{"type": "string", "description": "Parent folder id (omit for root)"},
					"tags":      tagIDsSchema,
				},
				"required": []string{"file_name"},
			},
		},
		{
			Name:        "create_inventory",
			Description: "Create an experience inventory with a column schema and optional initial entries",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":      map[string]any{"type": "string", "description": "Inventory name"},
					"parent_id": map[string]any{"type": "string", "description": "Parent folder id (omit for root)"},
					"tags":      tagIDsSchema,
					"columns":   columnsSchema,
					"entries": map[string]any{
						"type":  "array",
						"items": entryValuesSchema,
					},
				},
				"required": []string{"name", "columns"},
			},
		},
		{
			Name:        "get_item",
			Description: "Get an item with its tags resolved",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "description": "Item ID"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "update_item",
			Description: "Rename an item and/or replace its tags. The kind of an item never changes",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "description": "Item ID"},
					"name": map[string]any{"type": "string", "description": "New name"},
					"tags": tagIDsSchema,
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "set_item_tags",
			Description: "Replace the tag ids of an item",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":      map[string]any{"type": "string", "description": "Item ID"},
					"tag_ids": tagIDsSchema,
				},
				"required": []string{"id", "tag_ids"},
			},
		},
		{
			Name:        "delete_item",
			Description: "Delete an item. Deleting a folder also deletes its children; returns every removed id",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "description": "Item ID"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "move_item",
			Description: "Move an item into a folder, or to the root when folder_id is omitted",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":        map[string]any{"type": "string", "description": "Item ID"},
					"folder_id": map[string]any{"type": "string", "description": "Target folder id (omit for root)"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "list_children",
			Description: "List the direct children of a folder in creation order",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"parent_id": map[string]any{"type": "string", "description": "Folder id (omit for root)"},
				},
			},
		},
		{
			Name:        "list_visible_items",
			Description: "List one folder filtered by tags (any match) and name search, sorted, folders first",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"folder_id": map[string]any{"type": "string", "description": "Folder id (omit for root)"},
					"tag_ids":   tagIDsSchema,
					"search":    map[string]any{"type": "string", "description": "Case-insensitive name substring"},
					"sort_field": map[string]any{
						"type": "string",
						"enum": []string{"name", "type", "modified_at", "size"},
					},
					"direction": map[string]any{
						"type": "string",
						"enum": []string{"asc", "desc"},
					},
					"locale": map[string]any{"type": "string", "description": "BCP 47 tag for name collation (default from server config)"},
				},
			},
		},
		{
			Name:        "get_item_path",
			Description: "Get the chain of folders from the root down to an item",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "description": "Item ID"},
				},
				"required": []string{"id"},
			},
		},

		// Inventories
		{
			Name:        "list_entries",
			Description: "Get the schema and entries of an inventory",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"inventory_id": map[string]any{"type": "string", "description": "Inventory item ID"},
				},
				"required": []string{"inventory_id"},
			},
		},
		{
			Name:        "add_entry",
			Description: "Validate and append an entry to an inventory",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"inventory_id": map[string]any{"type": "string", "description": "Inventory item ID"},
					"values":       entryValuesSchema,
				},
				"required": []string{"inventory_id", "values"},
			},
		},
		{
			Name:        "update_entry",
			Description: "Merge values into an entry and validate the result",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"inventory_id": map[string]any{"type": "string", "description": "Inventory item ID"},
					"entry_id":     map[string]any{"type": "string", "description": "Entry ID"},
					"values":       entryValuesSchema,
				},
				"required": []string{"inventory_id", "entry_id", "values"},
			},
		},
		{
			Name:        "delete_entry",
			Description: "Remove an entry from an inventory",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"inventory_id": map[string]any{"type": "string", "description": "Inventory item ID"},
					"entry_id":     map[string]any{"type": "string", "description": "Entry ID"},
				},
				"required": []string{"inventory_id", "entry_id"},
			},
		},
		{
			Name:        "set_inventory_schema",
			Description: "Replace the columns of an inventory. Existing entries are revalidated on their next update",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"inventory_id": map[string]any{"type": "string", "description": "Inventory item ID"},
					"columns":      columnsSchema,
				},
				"required": []string{"inventory_id", "columns"},
			},
		},

		// Companions
		{
			Name:        "list_skills",
			Description: "List companion skills",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "toggle_skill",
			Description: "Enable or disable a skill",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "description": "Skill ID"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "set_skill_assets",
			Description: "Replace the items a knowledge-retrieval skill draws on",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "description": "Skill ID"},
					"asset_ids": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []string{"id", "asset_ids"},
			},
		},
		{
			Name:        "toggle_skill_asset",
			Description: "Add or remove one item from a knowledge-retrieval skill",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "description": "Skill ID"},
					"asset_id": map[string]any{"type": "string", "description": "Item ID"},
				},
				"required": []string{"id", "asset_id"},
			},
		},
		{
			Name:        "set_skill_inventory",
			Description: "Point a planning skill at an inventory, or clear it when inventory_id is omitted",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":           map[string]any{"type": "string", "description": "Skill ID"},
					"inventory_id": map[string]any{"type": "string", "description": "Inventory item ID"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "list_companions",
			Description: "List companions",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "create_companion",
			Description: "Create a companion",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":          map[string]any{"type": "string"},
					"description":   map[string]any{"type": "string"},
					"avatar":        map[string]any{"type": "string", "description": "Avatar text (defaults to initials)"},
					"system_prompt": map[string]any{"type": "string"},
					"skill_ids": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "update_companion",
			Description: "Update companion fields. Omitted fields are unchanged",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":            map[string]any{"type": "string", "description": "Companion ID"},
					"name":          map[string]any{"type": "string"},
					"description":   map[string]any{"type": "string"},
					"avatar":        map[string]any{"type": "string"},
					"system_prompt": map[string]any{"type": "string"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "toggle_companion_skill",
			Description: "Attach or detach a skill from a companion",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"companion_id": map[string]any{"type": "string"},
					"skill_id":     map[string]any{"type": "string"},
				},
				"required": []string{"companion_id", "skill_id"},
			},
		},

		// History
		{
			Name:        "get_recent_activity",
			Description: "List recent mutations, newest first",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"item_id": map[string]any{"type": "string", "description": "Only activity for this item"},
					"type":    map[string]any{"type": "string", "description": "Only this activity type (e.g. item_created)"},
					"limit":   map[string]any{"type": "integer", "minimum": 1, "description": "Maximum entries (default 50)"},
				},
			},
		},
	}
}
