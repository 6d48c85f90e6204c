// Kavach - UPI fraud triage engine.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/upi-kavach/kavach/internal/api"
	"github.com/upi-kavach/kavach/internal/bus"
	"github.com/upi-kavach/kavach/internal/cache"
	"github.com/upi-kavach/kavach/internal/classify"
	"github.com/upi-kavach/kavach/internal/content"
	"github.com/upi-kavach/kavach/internal/domain"
	"github.com/upi-kavach/kavach/internal/graph"
	"github.com/upi-kavach/kavach/internal/stats"
	"github.com/upi-kavach/kavach/internal/triage"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := loadConfig()

	initLogger(cfg.Logging)

	slog.Info("starting kavach",
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)
	slog.Info("configuration loaded",
		"cache", cfg.Cache.Type,
		"eventbus", cfg.EventBus.Type,
		"graph_file", cfg.GraphFile,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Initialize Cache
	cacheImpl, err := cache.New(cfg.Cache)
	if err != nil {
		slog.Error("failed to initialize cache", "error", err)
		os.Exit(1)
	}
	defer cacheImpl.Close()
	slog.Info("cache initialized", "type", cfg.Cache.Type)

	// Initialize EventBus
	busImpl, err := bus.New(cfg.EventBus)
	if err != nil {
		slog.Error("failed to initialize event bus", "error", err)
		os.Exit(1)
	}
	defer busImpl.Close()
	slog.Info("event bus initialized", "type", cfg.EventBus.Type)

	// Initialize the question graph: builtin unless a YAML file is given
	g, err := loadGraph(cfg.GraphFile)
	if err != nil {
		slog.Error("failed to load question graph", "error", err)
		os.Exit(1)
	}
	slog.Info("question graph loaded", "questions", g.Len(), "root", g.Root())

	// Initialize Classifier
	engine, err := classify.NewEngine()
	if err != nil {
		slog.Error("failed to initialize classifier", "error", err)
		os.Exit(1)
	}
	defer engine.Close()
	if err := engine.LoadRules(classify.BuiltinRules()); err != nil {
		slog.Error("failed to load classification rules", "error", err)
		os.Exit(1)
	}
	slog.Info("classifier initialized", "rules_count", engine.RuleCount())

	// Initialize Session Manager
	manager := triage.NewManager(cfg.Session, g, engine, cacheImpl, busImpl)
	defer manager.Close()
	slog.Info("session manager initialized",
		"ttl", cfg.Session.TTL,
		"max_sessions", cfg.Session.MaxSessions,
	)

	// Initialize Stats Collector
	collector := stats.NewCollector(busImpl)
	if err := collector.Start(); err != nil {
		slog.Error("failed to start stats collector", "error", err)
		os.Exit(1)
	}
	defer collector.Close()

	// Initialize Server
	srv := api.NewServer(cfg.Server, manager, engine, content.NewGenerator(), g, cacheImpl, busImpl, collector, Version)

	// Start Server in goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("kavach is ready",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	printBanner(cfg, Version)

	// Wait for shutdown signal
	<-ctx.Done()
	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("kavach shutdown complete")
}

// loadConfig builds the configuration from defaults and KAVACH_* environment
// variables.
func loadConfig() *domain.Config {
	cfg := domain.DefaultConfig()
	if os.Getenv("KAVACH_MODE") == "distributed" {
		cfg = domain.DistributedConfig()
	}

	envString("KAVACH_HOST", &cfg.Server.Host)
	envInt("KAVACH_PORT", &cfg.Server.Port)
	envString("KAVACH_GRAPH_FILE", &cfg.GraphFile)

	envDuration("KAVACH_SESSION_TTL", &cfg.Session.TTL)
	envDuration("KAVACH_SESSION_SWEEP_INTERVAL", &cfg.Session.SweepInterval)
	envInt("KAVACH_MAX_SESSIONS", &cfg.Session.MaxSessions)
	envDuration("KAVACH_RESULT_TTL", &cfg.Session.ResultTTL)

	envString("KAVACH_CACHE_TYPE", &cfg.Cache.Type)
	envString("KAVACH_REDIS_ADDR", &cfg.Cache.RedisAddr)
	envString("KAVACH_REDIS_PASSWORD", &cfg.Cache.RedisPassword)
	envInt("KAVACH_REDIS_DB", &cfg.Cache.RedisDB)

	envString("KAVACH_BUS_TYPE", &cfg.EventBus.Type)
	envString("KAVACH_NATS_URL", &cfg.EventBus.NATSUrl)
	envString("KAVACH_NATS_TOKEN", &cfg.EventBus.NATSToken)

	envString("KAVACH_LOG_LEVEL", &cfg.Logging.Level)
	envString("KAVACH_LOG_FORMAT", &cfg.Logging.Format)
	if os.Getenv("KAVACH_DEBUG") == "true" {
		cfg.Logging.Level = "debug"
	}

	return cfg
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func initLogger(cfg domain.LoggingConfig) {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

func loadGraph(path string) (*graph.Graph, error) {
	if path == "" {
		return graph.Builtin()
	}
	return graph.LoadFile(path)
}

func printBanner(cfg *domain.Config, version string) {
	fmt.Println()
	fmt.Println("  ╔═══════════════════════════════════════════╗")
	fmt.Println("  ║               🛡️ KAVACH                   ║")
	fmt.Println("  ║        UPI Fraud Triage Engine            ║")
	fmt.Println("  ║     Every minute counts after fraud.      ║")
	fmt.Println("  ╚═══════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("  Version:  %s\n", version)
	fmt.Printf("  Server:   http://%s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Println()
	fmt.Println("  Endpoints:")
	fmt.Println("    POST /sessions               - Start a triage session")
	fmt.Println("    GET  /sessions/{id}          - Get session state")
	fmt.Println("    POST /sessions/{id}/answers  - Answer the current question")
	fmt.Println("    POST /sessions/{id}/back     - Undo the latest answer")
	fmt.Println("    GET  /sessions/{id}/result   - Get the triage result")
	fmt.Println("    POST /content                - Generate reporting content")
	fmt.Println("    GET  /banks                  - List supported banks")
	fmt.Println("    GET  /banks/{name}           - Get bank fraud contacts")
	fmt.Println("    GET  /questions              - List the question graph")
	fmt.Println("    GET  /rules                  - List classification rules")
	fmt.Println("    GET  /stats                  - Triage aggregates")
	fmt.Println("    GET  /health                 - Health check")
	fmt.Println()
}
