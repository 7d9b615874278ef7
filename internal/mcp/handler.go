package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/tag"
	"github.com/rpggio/stowage/internal/domain/view"
)

// Handler dispatches tool calls to domain services.
type Handler struct {
	tags       TagService
	items      ItemService
	views      ViewService
	activity   ActivityService
	companions CompanionService
	logger     *slog.Logger
}

// NewHandler creates a new MCP handler.
func NewHandler(services Services, logger *slog.Logger) *Handler {
	return &Handler{
		tags:       services.Tags,
		items:      services.Items,
		views:      services.Views,
		activity:   services.Activity,
		companions: services.Companions,
		logger:     logger,
	}
}

// Handle executes the named tool with JSON-encoded params.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "list_tags":
		tags, err := h.tags.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return tags, nil
	case "create_tag":
		var req CreateTagParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		t, err := h.tags.Create(ctx, tag.CreateRequest{Name: req.Name, Color: req.Color})
		if err != nil {
			return nil, mapError(err)
		}
		return t, nil

	case "create_folder":
		var req CreateFolderParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		it, err := h.items.Create(ctx, item.CreateRequest{
			Kind:     item.KindFolder,
			Name:     req.Name,
			ParentID: req.ParentID,
			Tags:     req.Tags,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return it, nil
	case "upload_document":
		var req UploadDocumentParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		it, err := h.items.Upload(ctx, item.UploadRequest{
			FileName: req.FileName,
			Size:     req.Size,
			ParentID: req.ParentID,
			Tags:     req.Tags,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return it, nil
	case "create_inventory":
		var req CreateInventoryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		it, err := h.items.Create(ctx, item.CreateRequest{
			Kind:     item.KindInventory,
			Name:     req.Name,
			ParentID: req.ParentID,
			Tags:     req.Tags,
			Columns:  req.Columns,
			Entries:  req.Entries,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return it, nil
	case "get_item":
		var req ItemIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		it, err := h.items.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		tags, err := h.tags.FindByIDs(ctx, it.Tags)
		if err != nil {
			return nil, mapError(err)
		}
		return ItemDetailResponse{Item: *it, Tags: tags}, nil
	case "update_item":
		var req UpdateItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		it, err := h.items.Update(ctx, item.UpdateRequest{ID: req.ID, Name: req.Name, Tags: req.Tags})
		if err != nil {
			return nil, mapError(err)
		}
		return it, nil
	case "set_item_tags":
		var req SetItemTagsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		it, err := h.items.SetTags(ctx, req.ID, req.TagIDs)
		if err != nil {
			return nil, mapError(err)
		}
		return it, nil
	case "delete_item":
		var req ItemIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		deleted, err := h.items.Delete(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return DeleteItemResponse{Deleted: deleted}, nil
	case "move_item":
		var req MoveItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		it, err := h.items.Move(ctx, req.ID, req.FolderID)
		if err != nil {
			return nil, mapError(err)
		}
		return it, nil
	case "list_children":
		var req ListChildrenParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		items, err := h.items.ListChildren(ctx, req.ParentID)
		if err != nil {
			return nil, mapError(err)
		}
		return ItemListResponse{Items: items, Count: len(items)}, nil
	case "list_visible_items":
		var req ListVisibleItemsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		q := view.Query{
			FolderID:  req.FolderID,
			TagIDs:    req.TagIDs,
			Search:    req.Search,
			SortField: view.ParseSortField(req.SortField),
			Direction: view.ParseDirection(req.Direction),
		}
		if req.Locale != "" {
			locale, err := language.Parse(req.Locale)
			if err != nil {
				return nil, mapError(apperr.Validation("locale", fmt.Sprintf("Unknown locale %q", req.Locale)))
			}
			q.Locale = locale
		}
		items, err := h.views.List(ctx, q)
		if err != nil {
			return nil, mapError(err)
		}
		return ItemListResponse{Items: items, Count: len(items)}, nil
	case "get_item_path":
		var req ItemIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		path, err := h.items.Path(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return ItemListResponse{Items: path, Count: len(path)}, nil

	case "add_entry":
		var req EntryValuesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rec, err := h.items.AddEntry(ctx, req.InventoryID, req.Values)
		if err != nil {
			return nil, mapError(err)
		}
		return rec, nil
	case "update_entry":
		var req EntryValuesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		rec, err := h.items.UpdateEntry(ctx, req.InventoryID, req.EntryID, req.Values)
		if err != nil {
			return nil, mapError(err)
		}
		return rec, nil
	case "delete_entry":
		var req EntryRefParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.items.DeleteEntry(ctx, req.InventoryID, req.EntryID); err != nil {
			return nil, mapError(err)
		}
		return DeleteEntryResponse{InventoryID: req.InventoryID, EntryID: req.EntryID, Deleted: true}, nil
	case "list_entries":
		var req InventoryIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		inv, err := h.items.GetInventory(ctx, req.InventoryID)
		if err != nil {
			return nil, mapError(err)
		}
		return EntryListResponse{
			InventoryID: inv.ID,
			Schema:      inv.Inventory.Schema,
			Entries:     inv.Inventory.Entries,
		}, nil
	case "set_inventory_schema":
		var req SetInventorySchemaParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		it, err := h.items.SetSchema(ctx, req.InventoryID, req.Columns)
		if err != nil {
			return nil, mapError(err)
		}
		return it, nil

	case "list_skills":
		skills, err := h.companions.ListSkills(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return skills, nil
	case "toggle_skill":
		var req SkillIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		sk, err := h.companions.ToggleSkill(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return sk, nil
	case "set_skill_assets":
		var req SetSkillAssetsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		sk, err := h.companions.SetSkillAssets(ctx, req.ID, req.AssetIDs)
		if err != nil {
			return nil, mapError(err)
		}
		return sk, nil
	case "toggle_skill_asset":
		var req ToggleSkillAssetParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		sk, err := h.companions.ToggleSkillAsset(ctx, req.ID, req.AssetID)
		if err != nil {
			return nil, mapError(err)
		}
		return sk, nil
	case "set_skill_inventory":
		var req SetSkillInventoryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		sk, err := h.companions.SetSkillInventory(ctx, req.ID, req.InventoryID)
		if err != nil {
			return nil, mapError(err)
		}
		return sk, nil
	case "list_companions":
		companions, err := h.companions.ListCompanions(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return companions, nil
	case "create_companion":
		var req CreateCompanionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		c, err := h.companions.CreateCompanion(ctx, companion.CreateCompanionRequest{
			Name:         req.Name,
			Description:  req.Description,
			Avatar:       req.Avatar,
			SystemPrompt: req.SystemPrompt,
			SkillIDs:     req.SkillIDs,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return c, nil
	case "update_companion":
		var req UpdateCompanionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		c, err := h.companions.UpdateCompanion(ctx, companion.UpdateCompanionRequest{
			ID:           req.ID,
			Name:         req.Name,
			Description:  req.Description,
			Avatar:       req.Avatar,
			SystemPrompt: req.SystemPrompt,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return c, nil
	case "toggle_companion_skill":
		var req ToggleCompanionSkillParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		c, err := h.companions.ToggleCompanionSkill(ctx, req.CompanionID, req.SkillID)
		if err != nil {
			return nil, mapError(err)
		}
		return c, nil

	case "get_recent_activity":
		var req GetRecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		entries, err := h.activity.Recent(ctx, activity.ListOptions{
			ItemID: req.ItemID,
			Type:   req.Type,
			Limit:  req.Limit,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return entries, nil
	default:
		return nil, &APIError{Code: "UNKNOWN_TOOL", Message: fmt.Sprintf("unknown method: %s", method), RecoveryHint: "Call tools/list for available tools"}
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return invalidParams(err)
	}
	return nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
