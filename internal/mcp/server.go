package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/schema"
	"github.com/rpggio/stowage/internal/domain/tag"
	"github.com/rpggio/stowage/internal/domain/view"
)

// TagService defines tag registry operations needed by MCP.
type TagService interface {
	Create(ctx context.Context, req tag.CreateRequest) (*tag.Tag, error)
	List(ctx context.Context) ([]tag.Tag, error)
	FindByIDs(ctx context.Context, ids []string) ([]tag.Tag, error)
}

// ItemService defines item tree and inventory operations needed by MCP.
type ItemService interface {
	Create(ctx context.Context, req item.CreateRequest) (*item.Item, error)
	Upload(ctx context.Context, req item.UploadRequest) (*item.Item, error)
	Get(ctx context.Context, id string) (*item.Item, error)
	ListChildren(ctx context.Context, parentID *string) ([]item.Item, error)
	Update(ctx context.Context, req item.UpdateRequest) (*item.Item, error)
	SetTags(ctx context.Context, id string, tagIDs []string) (*item.Item, error)
	Delete(ctx context.Context, id string) ([]string, error)
	Move(ctx context.Context, id string, folderID *string) (*item.Item, error)
	Path(ctx context.Context, id string) ([]item.Item, error)

	AddEntry(ctx context.Context, inventoryID string, values map[string]schema.Value) (*schema.Record, error)
	UpdateEntry(ctx context.Context, inventoryID, entryID string, values map[string]schema.Value) (*schema.Record, error)
	DeleteEntry(ctx context.Context, inventoryID, entryID string) error
	GetInventory(ctx context.Context, inventoryID string) (*item.Item, error)
	SetSchema(ctx context.Context, inventoryID string, columns []schema.Column) (*item.Item, error)
}

// ViewService defines listing operations needed by MCP.
type ViewService interface {
	List(ctx context.Context, q view.Query) ([]item.Item, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	Recent(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// CompanionService defines skill and companion operations needed by MCP.
type CompanionService interface {
	ListSkills(ctx context.Context) ([]companion.Skill, error)
	ToggleSkill(ctx context.Context, id string) (*companion.Skill, error)
	SetSkillAssets(ctx context.Context, id string, assetIDs []string) (*companion.Skill, error)
	ToggleSkillAsset(ctx context.Context, id, assetID string) (*companion.Skill, error)
	SetSkillInventory(ctx context.Context, id string, inventoryID *string) (*companion.Skill, error)
	CreateCompanion(ctx context.Context, req companion.CreateCompanionRequest) (*companion.Companion, error)
	ListCompanions(ctx context.Context) ([]companion.Companion, error)
	UpdateCompanion(ctx context.Context, req companion.UpdateCompanionRequest) (*companion.Companion, error)
	ToggleCompanionSkill(ctx context.Context, companionID, skillID string) (*companion.Companion, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Tags       TagService
	Items      ItemService
	Views      ViewService
	Activity   ActivityService
	Companions CompanionService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "stowage",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, NewHandler(cfg.Services, cfg.Logger))

	return server
}

func registerTools(server *sdkmcp.Server, h *Handler) {
	for _, def := range buildToolCatalog() {
		name := def.Name
		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}
			result, err := h.Handle(ctx, name, args)
			if err != nil {
				return h.errorResult(ctx, name, err), nil
			}
			return jsonResult(result)
		})
	}
}

func jsonResult(v any) (*sdkmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil
}

// errorResult reports a failed call with IsError set. Errors without a
// domain mapping are logged and reported as INTERNAL without details.
func (h *Handler) errorResult(ctx context.Context, tool string, err error) *sdkmcp.CallToolResult {
	apiErr := MapError(err)
	if apiErr == nil {
		if h.logger != nil {
			h.logger.ErrorContext(ctx, "tool call failed", "tool", tool, "error", err)
		}
		apiErr = &APIError{Code: "INTERNAL", Message: "an internal error occurred"}
	}
	data, _ := json.Marshal(map[string]any{"error": apiErr})
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
		IsError: true,
	}
}
