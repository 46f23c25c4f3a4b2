package mcpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/wapj/mcp-test/pkg/errors"
)

const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Serve runs the configured transport until ctx is cancelled or the peer goes away.
func (s *Server) Serve(ctx context.Context) error {
	switch s.config.MCP.Transport {
	case TransportStdio, "":
		return s.serveStdio(ctx, os.Stdin, os.Stdout)
	case TransportSSE:
		return s.serveSSE(ctx)
	default:
		return errors.Wrap(errors.ErrInvalidInput, "unknown transport "+s.config.MCP.Transport)
	}
}

func (s *Server) serveStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(log.New(io.Discard, "", 0))

	s.logger.Info("Serving MCP over stdio", "name", s.config.MCP.Name, "version", s.config.MCP.Version)

	err := stdio.Listen(ctx, in, out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Server) serveSSE(ctx context.Context) error {
	sse := server.NewSSEServer(s.mcp,
		server.WithBaseURL(s.config.MCP.BaseURL),
		server.WithSSEEndpoint(s.config.MCP.SSEEndpoint),
		server.WithMessageEndpoint(s.config.MCP.MessageEndpoint),
	)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Serving MCP over SSE", "addr", s.config.MCP.Addr, "sse", s.config.MCP.SSEEndpoint)
		errCh <- sse.Start(s.config.MCP.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sse.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Failed to shut down SSE server", "error", err)
			return err
		}
		return nil
	}
}
