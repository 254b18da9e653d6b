// submodule cmd contains command definitions
package main

import (
	"fmt"
	"strings"

	"github.com/desertthunder/contenthub/internal/filter"
	"github.com/desertthunder/contenthub/internal/formatter"
	"github.com/desertthunder/contenthub/internal/tasks"
	"github.com/urfave/cli/v3"
)

func outputFlags() []cli.Flag {
	formats := make([]string, 0, len(formatter.Formats()))
	for _, f := range formatter.Formats() {
		formats = append(formats, string(f))
	}

	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output JSON",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   fmt.Sprintf("Output format (%s)", strings.Join(formats, ", ")),
			Value:   string(formatter.FormatText),
		},
	}
}

func limitFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of rows (0 for no limit)",
	}
}

func withOutput(flags ...cli.Flag) []cli.Flag {
	return append(flags, outputFlags()...)
}

// setupCommand handles setup operations for configuration and the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write a config file from the built-in example",
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the SQLite database and run migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "seed",
						Usage: "Load demo content after migrating",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// articlesCommand handles article reads
func articlesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "articles",
		Aliases: []string{"a"},
		Usage:   "Article operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List published articles, newest first",
				Flags: withOutput(
					&cli.StringFlag{Name: "category", Usage: "Exact category"},
					&cli.StringFlag{Name: "tag", Usage: "Articles carrying this tag"},
					&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Case-insensitive text search"},
					&cli.BoolFlag{Name: "featured", Usage: "Only featured (or with =false, only non-featured) articles"},
					&cli.StringFlag{Name: "audience", Usage: "Audience level (all, school, college, teens, it-pros)"},
					limitFlag(),
				),
				Action: r.ArticlesList,
			},
			{
				Name:  "get",
				Usage: "Show one article by slug",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "slug"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
					&cli.BoolFlag{Name: "markdown", Aliases: []string{"md"}, Usage: "Print the full article as Markdown"},
				},
				Action: r.ArticlesGet,
			},
			{
				Name:   "tags",
				Usage:  "List distinct article tags",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output JSON"}},
				Action: r.ArticleTags,
			},
			{
				Name:   "categories",
				Usage:  "List distinct article categories",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output JSON"}},
				Action: r.ArticleCategories,
			},
			{
				Name:   "slugs",
				Usage:  "List every published slug",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output JSON"}},
				Action: r.ArticleSlugs,
			},
		},
	}
}

// videosCommand handles video reads
func videosCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "videos",
		Aliases: []string{"v"},
		Usage:   "Video operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List published videos, newest first",
				Flags: withOutput(
					&cli.StringFlag{Name: "level", Usage: "Exact audience level"},
					&cli.StringFlag{Name: "category", Usage: "Exact category"},
					&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Case-insensitive text search"},
					&cli.StringFlag{Name: "audience", Usage: "Audience filter applied after the read"},
					limitFlag(),
				),
				Action: r.VideosList,
			},
			{
				Name:  "get",
				Usage: "Show one video by YouTube ID",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  outputFlags(),
				Action: r.VideosGet,
			},
		},
	}
}

// productsCommand handles product reads
func productsCommand(r *Runner) *cli.Command {
	groups := make([]string, 0, len(filter.ProductGroups()))
	for _, g := range filter.ProductGroups() {
		groups = append(groups, string(g))
	}

	return &cli.Command{
		Name:    "products",
		Aliases: []string{"p"},
		Usage:   "Product operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List published products in display order",
				Flags: withOutput(
					&cli.StringFlag{Name: "category", Usage: "Exact category"},
					&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Case-insensitive text search"},
					&cli.BoolFlag{Name: "affiliate", Usage: "Only affiliate (or with =false, only own) products"},
					&cli.StringFlag{Name: "group", Usage: fmt.Sprintf("Product group (%s)", strings.Join(groups, ", "))},
					limitFlag(),
				),
				Action: r.ProductsList,
			},
			{
				Name:  "get",
				Usage: "Show one product by ID",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  outputFlags(),
				Action: r.ProductsGet,
			},
		},
	}
}

// relatedCommand handles related link reads
func relatedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "related",
		Usage: "Related content operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List active related links in display order",
				Flags: withOutput(
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "Content type (video, article, product, external)"},
					limitFlag(),
				),
				Action: r.RelatedList,
			},
		},
	}
}

// exportCommand writes every collection to a directory
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export all collections with a manifest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (txt, json, csv, markdown)",
				Value:   string(formatter.FormatJSON),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory (default: contenthub_export_<timestamp>)",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   fmt.Sprintf("Concurrent collection workers (max %d)", tasks.MaxExportWorkers),
				Value:   tasks.DefaultExportWorkers,
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Backend reads per second",
				Value: tasks.DefaultExportRate,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the manifest as JSON",
			},
		},
		Action: r.Export,
	}
}

// serveCommand runs the HTTP API
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the read-only JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Listen host (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (overrides server.port)",
			},
		},
		Action: r.Serve,
	}
}

// mcpCommand runs the MCP tool server
func mcpCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve content tools over the Model Context Protocol",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "http",
				Usage: "Serve streamable HTTP on this address instead of stdio",
			},
		},
		Action: r.MCP,
	}
}

// browseCommand returns the top-level TUI command for browsing articles.
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"tui", "ui"},
		Usage:   "Browse articles interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs here while the browser owns the terminal",
				Value: "tmp/contenthub-browse.log",
			},
		},
		Action: r.Browse,
	}
}
