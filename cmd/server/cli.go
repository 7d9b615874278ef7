package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	"github.com/rpggio/stowage/internal/app"
	"github.com/rpggio/stowage/internal/config"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/tag"
	"github.com/rpggio/stowage/internal/domain/view"
	"github.com/rpggio/stowage/internal/mcp"
)

// newCLIApp creates the CLI application. Running without a command serves MCP
// over stdio.
func newCLIApp(cfg config.Config, logger *slog.Logger) *cli.App {
	a := &cli.App{
		Name:    "stowage",
		Usage:   "Asset tree, tag registry and experience inventories",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "driver", Usage: "Store driver: memory|sqlite"},
			&cli.StringFlag{Name: "dsn", Usage: "SQLite data source"},
			&cli.StringFlag{Name: "cascade", Usage: "Folder delete depth: shallow|recursive"},
			&cli.BoolFlag{Name: "no-seed", Usage: "Start without the demo data"},
		},
		Before: func(c *cli.Context) error {
			if c.IsSet("driver") {
				cfg.Store.Driver = c.String("driver")
			}
			if c.IsSet("dsn") {
				cfg.Store.DSN = c.String("dsn")
			}
			if c.IsSet("cascade") {
				cfg.Store.Cascade = c.String("cascade")
			}
			if c.Bool("no-seed") {
				cfg.Seed = false
			}
			return cfg.Validate()
		},
		Action: func(c *cli.Context) error {
			return serve(c, &cfg, logger)
		},
		Commands: []*cli.Command{
			serveCmd(&cfg, logger),
			lsCmd(&cfg, logger),
			tagsCmd(&cfg, logger),
			inventoryCmd(&cfg, logger),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	a.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return a
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	return app.New(ctx, *cfg, logger)
}

func serveCmd(cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the MCP tools over stdio",
		Action: func(c *cli.Context) error {
			return serve(c, cfg, logger)
		},
	}
}

func serve(c *cli.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := openStore(c.Context, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Tags:       store.Tags,
			Items:      store.Items,
			Views:      store.Views,
			Activity:   store.Activity,
			Companions: store.Companions,
		},
		Version: Version,
		Logger:  logger,
	})
	return runStdioMode(logger, server)
}

func lsCmd(cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "List the items of a folder, folders first",
		ArgsUsage: "[folder-id]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "tag", Aliases: []string{"t"}, Usage: "Only items with any of these tag ids"},
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Case-insensitive name substring"},
			&cli.StringFlag{Name: "sort", Value: "name", Usage: "Sort field: name|type|modified_at|size"},
			&cli.BoolFlag{Name: "desc", Usage: "Sort descending"},
			&cli.StringFlag{Name: "locale", Usage: "Collation locale (BCP 47)"},
		},
		Action: func(c *cli.Context) error {
			store, err := openStore(c.Context, cfg, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			q := view.Query{
				TagIDs:    c.StringSlice("tag"),
				Search:    c.String("search"),
				SortField: view.ParseSortField(c.String("sort")),
				Direction: view.Ascending,
			}
			if c.NArg() > 0 {
				folderID := c.Args().First()
				q.FolderID = &folderID
			}
			if c.Bool("desc") {
				q.Direction = view.Descending
			}
			if loc := c.String("locale"); loc != "" {
				tagLocale, err := language.Parse(loc)
				if err != nil {
					return fmt.Errorf("invalid locale %q: %w", loc, err)
				}
				q.Locale = tagLocale
			}

			items, err := store.Views.List(c.Context, q)
			if err != nil {
				return err
			}
			tags, err := store.Tags.List(c.Context)
			if err != nil {
				return err
			}
			return printItems(c.App.Writer, items, tags)
		},
	}
}

func printItems(out io.Writer, items []item.Item, tags []tag.Tag) error {
	names := make(map[string]string, len(tags))
	for _, t := range tags {
		names[t.ID] = t.Name
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSIZE\tMODIFIED\tTAGS")
	for _, it := range items {
		size := "-"
		if !it.IsFolder() {
			size = humanize.Bytes(uint64(it.Size))
		}
		labels := make([]string, 0, len(it.Tags))
		for _, id := range it.Tags {
			if name, ok := names[id]; ok {
				labels = append(labels, name)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID, it.Name, it.TypeLabel(), size, humanize.Time(it.ModifiedAt), strings.Join(labels, ", "))
	}
	return tw.Flush()
}

func tagsCmd(cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "List the tag registry",
		Action: func(c *cli.Context) error {
			store, err := openStore(c.Context, cfg, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			tags, err := store.Tags.List(c.Context)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCOLOR")
			for _, t := range tags {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, t.Color)
			}
			return tw.Flush()
		},
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Create a tag",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "color", Aliases: []string{"c"}, Usage: "Palette color (default: next in palette)"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("tag name is required")
					}
					store, err := openStore(c.Context, cfg, logger)
					if err != nil {
						return err
					}
					defer store.Close()

					t, err := store.Tags.Create(c.Context, tag.CreateRequest{
						Name:  strings.Join(c.Args().Slice(), " "),
						Color: tag.Color(c.String("color")),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", t.ID, t.Name, t.Color)
					return nil
				},
			},
		},
	}
}

func inventoryCmd(cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "inventory",
		Usage:     "Show the schema and entries of an inventory",
		ArgsUsage: "<inventory-id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print entries as JSON"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("inventory id is required")
			}
			store, err := openStore(c.Context, cfg, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			inv, err := store.Items.GetInventory(c.Context, c.Args().First())
			if err != nil {
				return err
			}

			if c.Bool("json") {
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(inv.Inventory)
			}

			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			header := make([]string, 0, len(inv.Inventory.Schema))
			for _, col := range inv.Inventory.Schema {
				header = append(header, col.Name)
			}
			fmt.Fprintln(tw, strings.Join(header, "\t"))
			for _, rec := range inv.Inventory.Entries {
				cells := make([]string, 0, len(inv.Inventory.Schema))
				for _, col := range inv.Inventory.Schema {
					cells = append(cells, rec.Values[col.ID].Text())
				}
				fmt.Fprintln(tw, strings.Join(cells, "\t"))
			}
			fmt.Fprintf(tw, "\n%s entries\n", humanize.Comma(int64(len(inv.Inventory.Entries))))
			return tw.Flush()
		},
	}
}
