package mcp

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
)

// Serve runs s over stdio, or over streamable HTTP when httpAddr is set, until ctx is done.
func Serve(ctx context.Context, s *server.MCPServer, httpAddr string, logger *log.Logger) error {
	if httpAddr == "" {
		logger.Debug("serving MCP over stdio")
		return server.ServeStdio(s)
	}

	httpServer := server.NewStreamableHTTPServer(s)
	errc := make(chan error, 1)
	go func() {
		logger.Info("serving MCP over HTTP", "addr", httpAddr)
		errc <- httpServer.Start(httpAddr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return httpServer.Shutdown(context.Background())
	}
}
