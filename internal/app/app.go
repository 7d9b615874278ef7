// Package app wires repositories and services together from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpggio/stowage/internal/config"
	"github.com/rpggio/stowage/internal/domain/activity"
	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/schema"
	"github.com/rpggio/stowage/internal/domain/tag"
	"github.com/rpggio/stowage/internal/domain/view"
	"github.com/rpggio/stowage/internal/memstore"
	"github.com/rpggio/stowage/internal/seed"
	"github.com/rpggio/stowage/internal/sqlite"
)

// App holds the services of one store.
type App struct {
	Tags       *tag.Service
	Items      *item.Service
	Views      *view.Service
	Activity   *activity.Service
	Companions *companion.Service

	closer func() error
}

type repositories struct {
	items      item.Repository
	tags       tag.Repository
	activity   activity.Repository
	skills     companion.SkillRepository
	companions companion.CompanionRepository
	close      func() error
}

// New builds the store described by cfg and, when cfg.Seed is set, loads the
// embedded demo data into it.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	locale, err := cfg.Locale()
	if err != nil {
		return nil, err
	}

	repos, err := openRepositories(cfg.Store)
	if err != nil {
		return nil, err
	}

	activitySvc := activity.NewService(repos.activity, logger)
	itemSvc := item.NewService(repos.items, activitySvc, logger, item.Options{
		Cascade:    item.CascadeMode(cfg.Store.Cascade),
		Validation: schema.Options{StrictTypes: cfg.Validation.StrictTypes},
	})
	a := &App{
		Tags:       tag.NewService(repos.tags, activitySvc, logger),
		Items:      itemSvc,
		Views:      view.NewService(itemSvc, locale),
		Activity:   activitySvc,
		Companions: companion.NewService(repos.skills, repos.companions, itemSvc, activitySvc, logger),
		closer:     repos.close,
	}

	if cfg.Seed {
		if err := a.seed(ctx, logger); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	if logger != nil {
		logger.Debug("store ready", "driver", cfg.Store.Driver, "cascade", cfg.Store.Cascade, "locale", locale.String())
	}
	return a, nil
}

// seed loads the demo data unless the store already has content, which
// happens when a sqlite file is reopened.
func (a *App) seed(ctx context.Context, logger *slog.Logger) error {
	existing, err := a.Items.List(ctx)
	if err != nil {
		return fmt.Errorf("checking store contents: %w", err)
	}
	tags, err := a.Tags.List(ctx)
	if err != nil {
		return fmt.Errorf("checking store contents: %w", err)
	}
	if len(existing) > 0 || len(tags) > 0 {
		if logger != nil {
			logger.Info("store not empty, skipping seed data", "items", len(existing), "tags", len(tags))
		}
		return nil
	}

	data, err := seed.Default()
	if err != nil {
		return err
	}
	svc := seed.Services{Tags: a.Tags, Items: a.Items, Companions: a.Companions}
	if err := seed.Load(ctx, data, svc, logger); err != nil {
		return fmt.Errorf("loading seed data: %w", err)
	}
	return nil
}

// Close releases the backing store.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

func openRepositories(cfg config.StoreConfig) (*repositories, error) {
	switch cfg.Driver {
	case "sqlite":
		if err := ensureDBDir(cfg.DSN); err != nil {
			return nil, fmt.Errorf("preparing database path: %w", err)
		}
		db, err := sqlite.New(cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &repositories{
			items:      sqlite.NewItemRepository(db),
			tags:       sqlite.NewTagRepository(db),
			activity:   sqlite.NewActivityRepository(db),
			skills:     sqlite.NewSkillRepository(db),
			companions: sqlite.NewCompanionRepository(db),
			close:      db.Close,
		}, nil
	case "memory", "":
		store := memstore.New()
		return &repositories{
			items:      store.Items(),
			tags:       store.Tags(),
			activity:   store.Activity(),
			skills:     store.Skills(),
			companions: store.Companions(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func ensureDBDir(path string) error {
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") || filepath.Dir(path) == "." {
		return nil
	}
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
