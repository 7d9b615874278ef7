package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/stowage/internal/domain/tag"
	"github.com/rpggio/stowage/internal/repository"
)

// TagRepository implements tag.Repository for SQLite
type TagRepository struct {
	db *DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create inserts a new tag
func (r *TagRepository) Create(ctx context.Context, t *tag.Tag) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tags (id, name, color) VALUES (?, ?, ?)`,
		t.ID, t.Name, t.Color)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// Get retrieves a tag by ID
func (r *TagRepository) Get(ctx context.Context, id string) (*tag.Tag, error) {
	var t tag.Tag
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, color FROM tags WHERE id = ?`, id).Scan(&t.ID, &t.Name, &t.Color)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &t, nil
}

// List returns all tags in insertion order
func (r *TagRepository) List(ctx context.Context) ([]tag.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM tags ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := []tag.Tag{}
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}
	return tags, nil
}
