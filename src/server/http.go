package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/config"
)

const shutdownTimeout = 5 * time.Second

// Options selects the transport Serve runs.
type Options struct {
	Transport    string
	Addr         string
	EndpointPath string
	CORSOrigins  []string
	Logger       func(format string, args ...interface{})
}

// Router returns the HTTP handler for the http and sse transports. Both carry
// a /healthz probe.
func Router(srv *mcpserver.MCPServer, opts Options) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "Mcp-Session-Id", "Mcp-Protocol-Version", "Last-Event-ID"},
			ExposedHeaders: []string{"Mcp-Session-Id"},
		}))
	}
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	switch opts.Transport {
	case config.TransportHTTP:
		path := opts.EndpointPath
		if path == "" {
			path = "/mcp"
		}
		r.Handle(path, mcpserver.NewStreamableHTTPServer(srv, mcpserver.WithEndpointPath(path)))
	case config.TransportSSE:
		sse := mcpserver.NewSSEServer(srv)
		r.Handle("/sse", sse.SSEHandler())
		r.Handle("/message", sse.MessageHandler())
	default:
		return nil, fmt.Errorf("transport %q has no http handler", opts.Transport)
	}
	return r, nil
}

// Serve runs srv on the configured transport until ctx is cancelled or the
// transport fails.
func Serve(ctx context.Context, srv *mcpserver.MCPServer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}
	if opts.Transport == config.TransportStdio || opts.Transport == "" {
		logger("serving on stdio")
		err := mcpserver.NewStdioServer(srv).Listen(ctx, os.Stdin, os.Stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	handler, err := Router(srv, opts)
	if err != nil {
		return err
	}
	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", opts.Addr, err)
	}
	return serveHTTP(ctx, ln, handler, logger)
}

// serveHTTP serves handler on ln. Request contexts derive from ctx so open
// SSE streams end on shutdown.
func serveHTTP(ctx context.Context, ln net.Listener, handler http.Handler, logger func(string, ...interface{})) error {
	httpSrv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errCh := make(chan error, 1)
	go func() {
		logger("serving on %s", ln.Addr())
		errCh <- httpSrv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
