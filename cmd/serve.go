package main

import (
	"context"

	"github.com/desertthunder/contenthub/internal/mcp"
	"github.com/desertthunder/contenthub/internal/server"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the JSON API until the context is cancelled.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.service()
	if err != nil {
		return err
	}

	cfg := r.config.Server
	if cmd.IsSet("host") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}

	logger := shared.WithLogger(r.logger, "component", "server")
	srv := server.New(cfg, server.NewHandler(svc, cfg, logger), logger)
	return srv.Run(ctx)
}

// MCP serves the content tools over stdio, or streamable HTTP when --http is set.
func (r *Runner) MCP(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.service()
	if err != nil {
		return err
	}
	return mcp.Serve(ctx, mcp.NewServer(svc), cmd.String("http"), shared.WithLogger(r.logger, "component", "mcp"))
}
