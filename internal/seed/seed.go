// Package seed loads demo content into a fresh store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/schema"
	"github.com/rpggio/stowage/internal/domain/tag"
)

//go:embed seed.yaml
var defaultData []byte

// Data is the seed file layout.
type Data struct {
	Tags       []tag.Tag             `yaml:"tags"`
	Items      []Item                `yaml:"items"`
	Skills     []companion.Skill     `yaml:"skills"`
	Companions []companion.Companion `yaml:"companions"`
}

// Item is one seeded tree node.
type Item struct {
	ID           string                    `yaml:"id"`
	Kind         item.Kind                 `yaml:"kind"`
	Name         string                    `yaml:"name"`
	ParentID     *string                   `yaml:"parent_id"`
	Tags         []string                  `yaml:"tags"`
	ModifiedAt   time.Time                 `yaml:"modified_at"`
	DocumentType item.DocumentType         `yaml:"document_type"`
	Size         int64                     `yaml:"size"`
	Columns      []schema.Column           `yaml:"columns"`
	Entries      []map[string]schema.Value `yaml:"entries"`
}

// Services are the entry points seed data is loaded through.
type Services struct {
	Tags       *tag.Service
	Items      *item.Service
	Companions *companion.Service
}

// Parse decodes a seed file.
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing seed data: %w", err)
	}
	return &data, nil
}

// Default returns the embedded demo data.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Load creates everything in data through the services, so seeded content
// passes the same validation as user input.
func Load(ctx context.Context, data *Data, svc Services, logger *slog.Logger) error {
	for _, t := range data.Tags {
		if _, err := svc.Tags.Create(ctx, tag.CreateRequest{ID: t.ID, Name: t.Name, Color: t.Color}); err != nil {
			return fmt.Errorf("seeding tag %s: %w", t.ID, err)
		}
	}

	for _, it := range data.Items {
		_, err := svc.Items.Create(ctx, item.CreateRequest{
			ID:           it.ID,
			Kind:         it.Kind,
			Name:         it.Name,
			ParentID:     it.ParentID,
			Tags:         it.Tags,
			ModifiedAt:   it.ModifiedAt,
			DocumentType: it.DocumentType,
			Size:         it.Size,
			Columns:      it.Columns,
			Entries:      it.Entries,
		})
		if err != nil {
			return fmt.Errorf("seeding item %s: %w", it.ID, err)
		}
	}

	if svc.Companions != nil {
		for _, sk := range data.Skills {
			_, err := svc.Companions.CreateSkill(ctx, companion.CreateSkillRequest{
				ID:          sk.ID,
				Name:        sk.Name,
				Description: sk.Description,
				Type:        sk.Type,
				Enabled:     sk.Enabled,
				AssetIDs:    sk.AssetIDs,
				TagIDs:      sk.TagIDs,
				InventoryID: sk.InventoryID,
			})
			if err != nil {
				return fmt.Errorf("seeding skill %s: %w", sk.ID, err)
			}
		}
		for _, c := range data.Companions {
			_, err := svc.Companions.CreateCompanion(ctx, companion.CreateCompanionRequest{
				ID:           c.ID,
				Name:         c.Name,
				Description:  c.Description,
				Avatar:       c.Avatar,
				SystemPrompt: c.SystemPrompt,
				SkillIDs:     c.SkillIDs,
			})
			if err != nil {
				return fmt.Errorf("seeding companion %s: %w", c.ID, err)
			}
		}
	}

	if logger != nil {
		logger.Info("seed data loaded",
			"tags", len(data.Tags),
			"items", len(data.Items),
			"skills", len(data.Skills),
			"companions", len(data.Companions))
	}
	return nil
}
