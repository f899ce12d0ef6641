package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/bilibili"
	"github.com/bilibili-mcp/go-bilibili-mcp/src/config"
	"github.com/bilibili-mcp/go-bilibili-mcp/src/logging"
	"github.com/bilibili-mcp/go-bilibili-mcp/src/search"
	"github.com/bilibili-mcp/go-bilibili-mcp/src/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bilibili-mcp:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file")
	envPath := flag.String("env", ".env", "path to a .env file")
	transport := flag.String("transport", "", "override transport: stdio, http or sse")
	addr := flag.String("addr", "", "override listen address for http/sse")
	flag.Parse()

	cfg, err := config.Load(*configPath, config.NewDotEnv(*envPath), config.ProcessEnv{})
	if err != nil {
		return err
	}
	if *transport != "" {
		cfg.Server.Transport = *transport
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	client := bilibili.NewClient(cfg.ClientOptions(
		logging.Printf(logger.With().Str("component", "bilibili").Logger())))
	adapter := search.NewAdapter(client,
		logging.Printf(logger.With().Str("component", "search").Logger()))
	srv, err := server.NewMCPServer(cfg.Server.Name, cfg.Server.Version, server.SearchTools(adapter),
		logging.Printf(logger.With().Str("component", "mcp").Logger()))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("name", cfg.Server.Name).
		Str("version", cfg.Server.Version).
		Str("transport", cfg.Server.Transport).
		Str("addr", cfg.Server.Addr).
		Bool("credential", !cfg.Bilibili.Credential.IsEmpty()).
		Msg("starting")

	err = server.Serve(ctx, srv, server.Options{
		Transport:    cfg.Server.Transport,
		Addr:         cfg.Server.Addr,
		EndpointPath: cfg.Server.EndpointPath,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Logger:       logging.Printf(logger.With().Str("component", "transport").Logger()),
	})
	if err != nil {
		logger.Error().Err(err).Msg("server stopped")
		return err
	}
	logger.Info().Msg("shutdown complete")
	return nil
}
