package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/schema"
	"github.com/rpggio/stowage/internal/repository"
)

const itemColumns = `id, name, kind, parent_id, tags, size, modified_at, document_type, inventory`

// ItemRepository implements item.Repository for SQLite
type ItemRepository struct {
	db *DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts a new item
func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	tags, docType, inv, err := encodeItem(it)
	if err != nil {
		return err
	}

	query := `INSERT INTO items (` + itemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		it.ID,
		it.Name,
		it.Kind,
		it.ParentID,
		tags,
		it.Size,
		it.ModifiedAt,
		docType,
		inv,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Get retrieves an item by ID
func (r *ItemRepository) Get(ctx context.Context, id string) (*item.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return it, nil
}

// Update replaces every mutable column of an item. The kind never changes.
func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	tags, docType, inv, err := encodeItem(it)
	if err != nil {
		return err
	}

	query := `
		UPDATE items
		SET name = ?, parent_id = ?, tags = ?, size = ?, modified_at = ?,
		    document_type = ?, inventory = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		it.Name,
		it.ParentID,
		tags,
		it.Size,
		it.ModifiedAt,
		docType,
		inv,
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes all ids in a single statement
func (r *ItemRepository) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := `DELETE FROM items WHERE id IN (` + placeholders(len(ids)) + `)`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	return nil
}

// List returns every item in insertion order
func (r *ItemRepository) List(ctx context.Context) ([]item.Item, error) {
	return r.query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY seq`)
}

// Children returns the direct children of parentID (nil = root)
func (r *ItemRepository) Children(ctx context.Context, parentID *string) ([]item.Item, error) {
	if parentID == nil {
		return r.query(ctx, `SELECT `+itemColumns+` FROM items WHERE parent_id IS NULL ORDER BY seq`)
	}
	return r.query(ctx, `SELECT `+itemColumns+` FROM items WHERE parent_id = ? ORDER BY seq`, *parentID)
}

func (r *ItemRepository) query(ctx context.Context, query string, args ...any) ([]item.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []item.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}
	return items, nil
}

func encodeItem(it *item.Item) (tags string, docType, inv sql.NullString, err error) {
	tags, err = encodeJSON(append([]string{}, it.Tags...))
	if err != nil {
		return "", docType, inv, err
	}
	if it.Document != nil {
		docType = sql.NullString{String: string(it.Document.Type), Valid: true}
	}
	if it.Inventory != nil {
		raw, err := encodeJSON(it.Inventory)
		if err != nil {
			return "", docType, inv, err
		}
		inv = sql.NullString{String: raw, Valid: true}
	}
	return tags, docType, inv, nil
}

func scanItem(row rowScanner) (*item.Item, error) {
	var (
		it      item.Item
		tags    string
		docType sql.NullString
		inv     sql.NullString
	)
	if err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Kind,
		&it.ParentID,
		&tags,
		&it.Size,
		&it.ModifiedAt,
		&docType,
		&inv,
	); err != nil {
		return nil, err
	}

	ids, err := decodeIDs(tags)
	if err != nil {
		return nil, err
	}
	it.Tags = ids
	if docType.Valid {
		it.Document = &item.Document{Type: item.DocumentType(docType.String)}
	}
	if inv.Valid {
		var decoded item.Inventory
		if err := json.Unmarshal([]byte(inv.String), &decoded); err != nil {
			return nil, fmt.Errorf("failed to decode inventory: %w", err)
		}
		if decoded.Entries == nil {
			decoded.Entries = []schema.Record{}
		}
		it.Inventory = &decoded
	}
	return &it, nil
}
