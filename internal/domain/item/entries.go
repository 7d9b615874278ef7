package item

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/oklog/ulid/v2"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/schema"
)

// AddEntry validates values against the inventory schema and appends the
// normalized record.
func (s *Service) AddEntry(ctx context.Context, inventoryID string, values map[string]schema.Value) (*schema.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.loadInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	normalized, err := schema.ValidateRecord(inv.Inventory.Schema, values, s.opts.Validation)
	if err != nil {
		return nil, err
	}

	id, err := s.newEntryID()
	if err != nil {
		return nil, err
	}
	rec := schema.Record{ID: id, Values: normalized}
	inv.Inventory.Entries = append(inv.Inventory.Entries, rec)
	if err := s.save(ctx, inv); err != nil {
		return nil, err
	}

	s.logActivity(ctx, &inv.ID, activity.TypeEntryAdded, fmt.Sprintf("added entry %s to %q", rec.ID, inv.Name))
	out := rec.Clone()
	return &out, nil
}

// UpdateEntry merges values over an existing entry and re-validates the
// result against the current schema.
func (s *Service) UpdateEntry(ctx context.Context, inventoryID, entryID string, values map[string]schema.Value) (*schema.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.loadInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	idx := entryIndex(inv.Inventory.Entries, entryID)
	if idx < 0 {
		return nil, apperr.NotFound(ErrEntryNotFound, "entry", entryID)
	}

	merged := inv.Inventory.Entries[idx].Clone().Values
	for k, v := range values {
		merged[k] = v
	}
	normalized, err := schema.ValidateRecord(inv.Inventory.Schema, merged, s.opts.Validation)
	if err != nil {
		return nil, err
	}

	rec := schema.Record{ID: entryID, Values: normalized}
	inv.Inventory.Entries[idx] = rec
	if err := s.save(ctx, inv); err != nil {
		return nil, err
	}

	s.logActivity(ctx, &inv.ID, activity.TypeEntryUpdated, fmt.Sprintf("updated entry %s in %q", entryID, inv.Name))
	out := rec.Clone()
	return &out, nil
}

// DeleteEntry removes an entry from an inventory.
func (s *Service) DeleteEntry(ctx context.Context, inventoryID, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.loadInventory(ctx, inventoryID)
	if err != nil {
		return err
	}
	idx := entryIndex(inv.Inventory.Entries, entryID)
	if idx < 0 {
		return apperr.NotFound(ErrEntryNotFound, "entry", entryID)
	}
	inv.Inventory.Entries = slices.Delete(inv.Inventory.Entries, idx, idx+1)
	if err := s.save(ctx, inv); err != nil {
		return err
	}

	s.logActivity(ctx, &inv.ID, activity.TypeEntryDeleted, fmt.Sprintf("deleted entry %s from %q", entryID, inv.Name))
	return nil
}

// ListEntries returns the entries of an inventory in insertion order.
func (s *Service) ListEntries(ctx context.Context, inventoryID string) ([]schema.Record, error) {
	inv, err := s.loadInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	return inv.Inventory.Entries, nil
}

// GetInventory returns the item for inventoryID, failing when it is missing
// or is not an inventory.
func (s *Service) GetInventory(ctx context.Context, inventoryID string) (*Item, error) {
	return s.loadInventory(ctx, inventoryID)
}

func (s *Service) loadInventory(ctx context.Context, id string) (*Item, error) {
	it, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.NotFound(ErrInventoryNotFound, "inventory", id)
		}
		return nil, err
	}
	if it.Kind != KindInventory || it.Inventory == nil {
		return nil, apperr.NotFound(ErrInventoryNotFound, "inventory", id)
	}
	return it, nil
}

// newEntryID returns a ULID; callers hold s.mu.
func (s *Service) newEntryID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(s.opts.Now()), s.entropy)
	if err != nil {
		return "", fmt.Errorf("generating entry id: %w", err)
	}
	return id.String(), nil
}

func entryIndex(entries []schema.Record, id string) int {
	return slices.IndexFunc(entries, func(r schema.Record) bool { return r.ID == id })
}

// SetSchema replaces the columns of an inventory. Existing entries keep their
// values and are checked against the new schema only when next updated.
func (s *Service) SetSchema(ctx context.Context, inventoryID string, columns []schema.Column) (*Item, error) {
	cols, err := schema.NormalizeSchema(columns)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.loadInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	inv.Inventory.Schema = cols
	if err := s.save(ctx, inv); err != nil {
		return nil, err
	}

	s.logActivity(ctx, &inv.ID, activity.TypeItemUpdated, fmt.Sprintf("changed schema of %q (%d columns)", inv.Name, len(cols)))
	return inv, nil
}
