package item

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/schema"
	"github.com/rpggio/stowage/internal/repository"
)

// Service handles item tree operations. Mutations are serialized and each
// persists through a single repository write.
type Service struct {
	mu         sync.Mutex
	items      Repository
	activities ActivityRepository
	logger     *slog.Logger
	opts       Options
	entropy    *ulid.MonotonicEntropy
}

// NewService creates a new item service.
func NewService(items Repository, activities ActivityRepository, logger *slog.Logger, opts Options) *Service {
	if opts.Cascade == "" {
		opts.Cascade = CascadeShallow
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		items:      items,
		activities: activities,
		logger:     logger,
		opts:       opts,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// CreateRequest describes an item creation request. DocumentType and Size
// apply to documents, Columns and Entries to inventories.
type CreateRequest struct {
	ID         string // optional, generated when empty
	Kind       Kind
	Name       string
	ParentID   *string
	Tags       []string
	ModifiedAt time.Time // optional, defaults to now

	DocumentType DocumentType
	Size         int64
	Columns      []schema.Column
	Entries      []map[string]schema.Value
}

// UploadRequest records an uploaded file. Only metadata is kept.
type UploadRequest struct {
	FileName string
	Size     int64
	ParentID *string
	Tags     []string
}

// UpdateRequest describes an item update. Nil fields are left unchanged; the
// kind of an item never changes.
type UpdateRequest struct {
	ID   string
	Name *string
	Tags *[]string
}

// Create adds a folder, document or inventory to the tree.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	name, err := ValidateCreateInput(req)
	if err != nil {
		return nil, err
	}

	it := &Item{
		ID:         req.ID,
		Name:       name,
		Kind:       req.Kind,
		Tags:       dedupe(req.Tags),
		ModifiedAt: req.ModifiedAt,
		ParentID:   req.ParentID,
	}
	switch req.Kind {
	case KindDocument:
		it.Document = &Document{Type: req.DocumentType}
		it.Size = req.Size
	case KindInventory:
		cols, err := schema.NormalizeSchema(req.Columns)
		if err != nil {
			return nil, err
		}
		it.Inventory = &Inventory{Schema: cols, Entries: make([]schema.Record, 0, len(req.Entries))}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if it.Inventory != nil {
		for i, values := range req.Entries {
			normalized, err := schema.ValidateRecord(it.Inventory.Schema, values, s.opts.Validation)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i+1, err)
			}
			id, err := s.newEntryID()
			if err != nil {
				return nil, err
			}
			it.Inventory.Entries = append(it.Inventory.Entries, schema.Record{ID: id, Values: normalized})
		}
	}

	if it.ParentID != nil {
		if _, err := s.loadFolder(ctx, *it.ParentID, "parent_id"); err != nil {
			return nil, err
		}
	}
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.ModifiedAt.IsZero() {
		it.ModifiedAt = s.opts.Now()
	}

	if err := s.items.Create(ctx, it); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Validation("id", fmt.Sprintf("item id %q already exists", it.ID)).Wrap(ErrDuplicateID)
		}
		return nil, fmt.Errorf("creating item: %w", err)
	}

	s.logActivity(ctx, &it.ID, activity.TypeItemCreated, fmt.Sprintf("created %s %q", it.Kind, it.Name))
	if s.logger != nil {
		s.logger.Debug("item created", "id", it.ID, "kind", it.Kind, "name", it.Name)
	}
	return it, nil
}

// Upload records a document for an uploaded file, deriving its type from the
// file extension.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*Item, error) {
	name := strings.TrimSpace(filepath.Base(req.FileName))
	if strings.TrimSpace(req.FileName) == "" {
		return nil, apperr.Validation("file_name", "File name is required").Wrap(ErrInvalidName)
	}
	docType, ok := DocumentTypeFromFileName(name)
	if !ok {
		return nil, unsupportedFileType()
	}
	return s.Create(ctx, CreateRequest{
		Kind:         KindDocument,
		Name:         name,
		ParentID:     req.ParentID,
		Tags:         req.Tags,
		DocumentType: docType,
		Size:         req.Size,
	})
}

// Get returns an item by ID.
func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	it, err := s.items.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(ErrItemNotFound, "item", id)
		}
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return it, nil
}

// List returns every item in insertion order.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.items.List(ctx)
}

// ListChildren returns the direct children of parentID (nil = root).
func (s *Service) ListChildren(ctx context.Context, parentID *string) ([]Item, error) {
	return s.items.Children(ctx, parentID)
}

// Update renames an item and/or replaces its tags.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Item, error) {
	var name string
	if req.Name != nil {
		n, err := validateName(*req.Name)
		if err != nil {
			return nil, err
		}
		name = n
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		it.Name = name
	}
	if req.Tags != nil {
		it.Tags = dedupe(*req.Tags)
	}
	if err := s.save(ctx, it); err != nil {
		return nil, err
	}

	s.logActivity(ctx, &it.ID, activity.TypeItemUpdated, fmt.Sprintf("updated %q", it.Name))
	return it, nil
}

// SetTags replaces the tag ids of an item. Ids are not checked against the
// registry.
func (s *Service) SetTags(ctx context.Context, id string, tagIDs []string) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	it.Tags = dedupe(tagIDs)
	if err := s.save(ctx, it); err != nil {
		return nil, err
	}

	s.logActivity(ctx, &it.ID, activity.TypeTagsSet, fmt.Sprintf("set %d tags on %q", len(it.Tags), it.Name))
	return it, nil
}

// Delete removes an item. Deleting a folder also removes its children, one
// level deep or the whole subtree depending on the cascade mode. It returns
// the ids removed.
func (s *Service) Delete(ctx context.Context, id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ids := []string{it.ID}
	if it.IsFolder() {
		frontier := []string{it.ID}
		for len(frontier) > 0 {
			parent := frontier[0]
			frontier = frontier[1:]
			children, err := s.items.Children(ctx, &parent)
			if err != nil {
				return nil, fmt.Errorf("listing children: %w", err)
			}
			for _, c := range children {
				ids = append(ids, c.ID)
				if s.opts.Cascade == CascadeRecursive && c.IsFolder() {
					frontier = append(frontier, c.ID)
				}
			}
		}
	}

	if err := s.items.Delete(ctx, ids); err != nil {
		return nil, fmt.Errorf("deleting item: %w", err)
	}

	s.logActivity(ctx, &it.ID, activity.TypeItemDeleted, fmt.Sprintf("deleted %q (%d items)", it.Name, len(ids)))
	if s.logger != nil {
		s.logger.Debug("item deleted", "id", it.ID, "removed", len(ids), "cascade", s.opts.Cascade)
	}
	return ids, nil
}

// Move reparents an item under folderID (nil = root).
func (s *Service) Move(ctx context.Context, id string, folderID *string) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if folderID != nil {
		if *folderID == it.ID {
			return nil, apperr.Validation("folder_id", "An item cannot be moved into itself").Wrap(ErrCycle)
		}
		target, err := s.loadFolder(ctx, *folderID, "folder_id")
		if err != nil {
			return nil, err
		}
		ancestors, err := s.ancestors(ctx, target)
		if err != nil {
			return nil, err
		}
		for _, a := range ancestors {
			if a.ID == it.ID {
				return nil, apperr.Validation("folder_id", "A folder cannot be moved into its own subfolder").Wrap(ErrCycle)
			}
		}
		p := *folderID
		it.ParentID = &p
	} else {
		it.ParentID = nil
	}

	if err := s.save(ctx, it); err != nil {
		return nil, err
	}

	dest := "root"
	if folderID != nil {
		dest = *folderID
	}
	s.logActivity(ctx, &it.ID, activity.TypeItemMoved, fmt.Sprintf("moved %q to %s", it.Name, dest))
	return it, nil
}

// Path returns the chain of items from the root down to id. The chain stops
// early at a parent that no longer exists.
func (s *Service) Path(ctx context.Context, id string) ([]Item, error) {
	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ancestors, err := s.ancestors(ctx, it)
	if err != nil {
		return nil, err
	}
	out := make([]Item, 0, len(ancestors))
	for i := len(ancestors) - 1; i >= 0; i-- {
		out = append(out, *ancestors[i])
	}
	return out, nil
}

// ancestors walks parent links from it upward, it included.
func (s *Service) ancestors(ctx context.Context, it *Item) ([]*Item, error) {
	chain := []*Item{it}
	seen := map[string]struct{}{it.ID: {}}
	cur := it
	for cur.ParentID != nil {
		if _, loop := seen[*cur.ParentID]; loop {
			break
		}
		parent, err := s.items.Get(ctx, *cur.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				break
			}
			return nil, fmt.Errorf("walking ancestors: %w", err)
		}
		seen[parent.ID] = struct{}{}
		chain = append(chain, parent)
		cur = parent
	}
	return chain, nil
}

func (s *Service) loadFolder(ctx context.Context, id, field string) (*Item, error) {
	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !it.IsFolder() {
		return nil, parentNotFolder(field)
	}
	return it, nil
}

func (s *Service) save(ctx context.Context, it *Item) error {
	it.ModifiedAt = s.opts.Now()
	if err := s.items.Update(ctx, it); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(ErrItemNotFound, "item", it.ID)
		}
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

func (s *Service) logActivity(ctx context.Context, itemID *string, typ activity.Type, summary string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Log(ctx, &activity.Entry{
		ItemID:    itemID,
		Type:      typ,
		Summary:   summary,
		CreatedAt: s.opts.Now(),
	})
}
