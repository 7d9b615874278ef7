package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/repository"
)

const (
	skillColumns     = `id, name, description, type, enabled, asset_ids, tag_ids, inventory_id`
	companionColumns = `id, name, description, avatar, system_prompt, skill_ids`
)

// SkillRepository implements companion.SkillRepository for SQLite
type SkillRepository struct {
	db *DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create inserts a new skill
func (r *SkillRepository) Create(ctx context.Context, s *companion.Skill) error {
	assets, tags, err := encodeSkillLists(s)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO skills (`+skillColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Description, s.Type, s.Enabled, assets, tags, s.InventoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

// Get retrieves a skill by ID
func (r *SkillRepository) Get(ctx context.Context, id string) (*companion.Skill, error) {
	s, err := scanSkill(r.db.QueryRowContext(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return s, nil
}

// Update replaces the mutable columns of a skill
func (r *SkillRepository) Update(ctx context.Context, s *companion.Skill) error {
	assets, tags, err := encodeSkillLists(s)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, `
		UPDATE skills
		SET name = ?, description = ?, enabled = ?, asset_ids = ?, tag_ids = ?, inventory_id = ?
		WHERE id = ?`,
		s.Name, s.Description, s.Enabled, assets, tags, s.InventoryID, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return requireAffected(result)
}

// List returns all skills in insertion order
func (r *SkillRepository) List(ctx context.Context) ([]companion.Skill, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []companion.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}
	return skills, nil
}

func encodeSkillLists(s *companion.Skill) (assets, tags string, err error) {
	if assets, err = encodeJSON(append([]string{}, s.AssetIDs...)); err != nil {
		return "", "", err
	}
	if tags, err = encodeJSON(append([]string{}, s.TagIDs...)); err != nil {
		return "", "", err
	}
	return assets, tags, nil
}

func scanSkill(row rowScanner) (*companion.Skill, error) {
	var (
		s      companion.Skill
		assets string
		tags   string
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Type, &s.Enabled, &assets, &tags, &s.InventoryID); err != nil {
		return nil, err
	}
	var err error
	if s.AssetIDs, err = decodeIDs(assets); err != nil {
		return nil, err
	}
	if s.TagIDs, err = decodeIDs(tags); err != nil {
		return nil, err
	}
	return &s, nil
}

// CompanionRepository implements companion.CompanionRepository for SQLite
type CompanionRepository struct {
	db *DB
}

// NewCompanionRepository creates a new CompanionRepository
func NewCompanionRepository(db *DB) *CompanionRepository {
	return &CompanionRepository{db: db}
}

// Create inserts a new companion
func (r *CompanionRepository) Create(ctx context.Context, c *companion.Companion) error {
	skills, err := encodeJSON(append([]string{}, c.SkillIDs...))
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO companions (`+companionColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Description, c.Avatar, c.SystemPrompt, skills)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create companion: %w", err)
	}
	return nil
}

// Get retrieves a companion by ID
func (r *CompanionRepository) Get(ctx context.Context, id string) (*companion.Companion, error) {
	c, err := scanCompanion(r.db.QueryRowContext(ctx, `SELECT `+companionColumns+` FROM companions WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get companion: %w", err)
	}
	return c, nil
}

// Update replaces the mutable columns of a companion
func (r *CompanionRepository) Update(ctx context.Context, c *companion.Companion) error {
	skills, err := encodeJSON(append([]string{}, c.SkillIDs...))
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, `
		UPDATE companions
		SET name = ?, description = ?, avatar = ?, system_prompt = ?, skill_ids = ?
		WHERE id = ?`,
		c.Name, c.Description, c.Avatar, c.SystemPrompt, skills, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update companion: %w", err)
	}
	return requireAffected(result)
}

// List returns all companions in insertion order
func (r *CompanionRepository) List(ctx context.Context) ([]companion.Companion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+companionColumns+` FROM companions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companions: %w", err)
	}
	defer rows.Close()

	companions := []companion.Companion{}
	for rows.Next() {
		c, err := scanCompanion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan companion: %w", err)
		}
		companions = append(companions, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companion rows: %w", err)
	}
	return companions, nil
}

func scanCompanion(row rowScanner) (*companion.Companion, error) {
	var (
		c      companion.Companion
		skills string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Avatar, &c.SystemPrompt, &skills); err != nil {
		return nil, err
	}
	ids, err := decodeIDs(skills)
	if err != nil {
		return nil, err
	}
	c.SkillIDs = ids
	return &c, nil
}

func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
