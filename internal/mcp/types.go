package mcp

import (
	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/schema"
	"github.com/rpggio/stowage/internal/domain/tag"
)

// ToolDefinition describes a tool for registration and listing.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type CreateTagParams struct {
	Name  string    `json:"name"`
	Color tag.Color `json:"color,omitempty"`
}

type CreateFolderParams struct {
	Name     string   `json:"name"`
	ParentID *string  `json:"parent_id,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type UploadDocumentParams struct {
	FileName string   `json:"file_name"`
	Size     int64    `json:"size"`
	ParentID *string  `json:"parent_id,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type CreateInventoryParams struct {
	Name     string                    `json:"name"`
	ParentID *string                   `json:"parent_id,omitempty"`
	Tags     []string                  `json:"tags,omitempty"`
	Columns  []schema.Column           `json:"columns"`
	Entries  []map[string]schema.Value `json:"entries,omitempty"`
}

type ItemIDParams struct {
	ID string `json:"id"`
}

type UpdateItemParams struct {
	ID   string    `json:"id"`
	Name *string   `json:"name,omitempty"`
	Tags *[]string `json:"tags,omitempty"`
}

type SetItemTagsParams struct {
	ID     string   `json:"id"`
	TagIDs []string `json:"tag_ids"`
}

type MoveItemParams struct {
	ID       string  `json:"id"`
	FolderID *string `json:"folder_id,omitempty"`
}

type ListChildrenParams struct {
	ParentID *string `json:"parent_id,omitempty"`
}

type ListVisibleItemsParams struct {
	FolderID  *string  `json:"folder_id,omitempty"`
	TagIDs    []string `json:"tag_ids,omitempty"`
	Search    string   `json:"search,omitempty"`
	SortField string   `json:"sort_field,omitempty"`
	Direction string   `json:"direction,omitempty"`
	Locale    string   `json:"locale,omitempty"`
}

type EntryValuesParams struct {
	InventoryID string                  `json:"inventory_id"`
	EntryID     string                  `json:"entry_id,omitempty"`
	Values      map[string]schema.Value `json:"values"`
}

type EntryRefParams struct {
	InventoryID string `json:"inventory_id"`
	EntryID     string `json:"entry_id"`
}

type InventoryIDParams struct {
	InventoryID string `json:"inventory_id"`
}

type SetInventorySchemaParams struct {
	InventoryID string          `json:"inventory_id"`
	Columns     []schema.Column `json:"columns"`
}

type SkillIDParams struct {
	ID string `json:"id"`
}

type SetSkillAssetsParams struct {
	ID       string   `json:"id"`
	AssetIDs []string `json:"asset_ids"`
}

type ToggleSkillAssetParams struct {
	ID      string `json:"id"`
	AssetID string `json:"asset_id"`
}

type SetSkillInventoryParams struct {
	ID          string  `json:"id"`
	InventoryID *string `json:"inventory_id,omitempty"`
}

type CreateCompanionParams struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Avatar       string   `json:"avatar,omitempty"`
	SystemPrompt string   `json:"system_prompt,omitempty"`
	SkillIDs     []string `json:"skill_ids,omitempty"`
}

type UpdateCompanionParams struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Avatar       *string `json:"avatar,omitempty"`
	SystemPrompt *string `json:"system_prompt,omitempty"`
}

type ToggleCompanionSkillParams struct {
	CompanionID string `json:"companion_id"`
	SkillID     string `json:"skill_id"`
}

type GetRecentActivityParams struct {
	ItemID *string        `json:"item_id,omitempty"`
	Type   *activity.Type `json:"type,omitempty"`
	Limit  int            `json:"limit,omitempty"`
}

// ItemDetailResponse is an item with its tag ids resolved.
type ItemDetailResponse struct {
	Item item.Item `json:"item"`
	Tags []tag.Tag `json:"tags"`
}

type ItemListResponse struct {
	Items []item.Item `json:"items"`
	Count int         `json:"count"`
}

type DeleteItemResponse struct {
	Deleted []string `json:"deleted"`
}

type DeleteEntryResponse struct {
	InventoryID string `json:"inventory_id"`
	EntryID     string `json:"entry_id"`
	Deleted     bool   `json:"deleted"`
}

type EntryListResponse struct {
	InventoryID string          `json:"inventory_id"`
	Schema      schema.Schema   `json:"schema"`
	Entries     []schema.Record `json:"entries"`
}
