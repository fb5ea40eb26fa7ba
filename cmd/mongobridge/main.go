package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/erauner12/mongobridge/internal/config"
	"github.com/erauner12/mongobridge/internal/mongodb"
	"github.com/erauner12/mongobridge/internal/server"
	"github.com/erauner12/mongobridge/internal/tools"
)

const (
	serverName = "mongobridge"
	version    = "0.1.0"
)

var (
	configPath  = flag.String("config", "", "Path to configuration file (JSON)")
	showVersion = flag.Bool("version", false, "Show version information")
	httpAddr    = flag.String("http", "", "Serve the Streamable HTTP transport on this address (default: stdio)")
	debug       = flag.Bool("debug", false, "Enable debug logging")
	logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("%s version %s\n", serverName, version)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logging. The stdio transport owns stdout for the protocol, so
	// all logging goes to stderr.
	setupLogging(cfg)

	log.Info().
		Str("version", version).
		Str("defaultDatabase", cfg.DefaultDatabase).
		Bool("debug", cfg.Debug).
		Msg("Starting MongoDB MCP server")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("MCP server failed")
		os.Exit(1)
	}

	log.Info().Msg("MongoDB MCP server stopped gracefully")
}

// loadConfig loads the configuration from file and environment
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadFromEnvironment()
	}

	if err != nil {
		return nil, err
	}

	// Apply CLI flag overrides BEFORE validation. flag.Visit distinguishes
	// an explicit -log-level info from the flag's default.
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	applyFlagOverrides(cfg, setFlags)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyFlagOverrides layers explicitly set CLI flags over the loaded
// configuration
func applyFlagOverrides(cfg *config.Config, setFlags map[string]bool) {
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}
	if *debug {
		cfg.Debug = true
		if !setFlags["log-level"] {
			cfg.LogLevel = "debug"
		}
	}
	if setFlags["log-level"] {
		cfg.LogLevel = *logLevel
	}
}

// setupLogging configures the global logger
func setupLogging(cfg *config.Config) {
	level := parseLogLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	if cfg.Debug {
		// Pretty logging for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	} else {
		// JSON logging for production
		log.Logger = zerolog.New(os.Stderr).
			With().
			Timestamp().
			Logger()
	}

	if cfg.Debug {
		log.Logger = log.Logger.With().Caller().Logger()
	}
}

// parseLogLevel converts a string log level to zerolog.Level
func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// run connects to MongoDB, builds the tool registry, and serves the
// selected transport until ctx is cancelled
func run(ctx context.Context, cfg *config.Config) error {
	// A server that cannot reach its database is useless, so a failed
	// startup connection is fatal rather than deferred to tool calls.
	connectCtx, connectCancel := context.WithTimeout(ctx, 15*time.Second)
	client, err := mongodb.Connect(connectCtx, cfg.MongoURI)
	connectCancel()
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	manager := mongodb.NewManager(client)
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		if err := manager.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("error closing MongoDB connection")
		}
	}()

	registry := tools.NewRegistry()
	tools.RegisterAllTools(registry)
	toolCtx := tools.NewToolContext(&log.Logger, manager, cfg.DefaultDatabase)

	if cfg.HTTPAddr != "" {
		return runHTTP(ctx, cfg, registry, toolCtx)
	}
	return server.RunStdio(ctx, serverName, version, registry, toolCtx)
}

// runHTTP serves the Streamable HTTP transport and shuts it down when
// ctx is cancelled
func runHTTP(ctx context.Context, cfg *config.Config, registry *tools.Registry, toolCtx *tools.ToolContext) error {
	srv := server.NewHTTPServer(serverName, version, cfg.AllowedOrigins, registry, toolCtx)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.HTTPAddr)
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown failed: %w", err)
		}
		return nil
	}
}
