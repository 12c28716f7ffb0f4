// Package main provides the one-shot news fetch command: fetch,
// normalize, store and categorize across all configured providers once.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newswire/internal/config"
	"newswire/internal/ingest"
	"newswire/internal/logger"
	"newswire/internal/report"

	"github.com/getsentry/sentry-go"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional, defaults apply)")
	limit := flag.Int("limit", 0, "Articles to fetch per source (overrides config)")
	mock := flag.Bool("mock", false, "Use built-in mock data instead of live API calls")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *dbPath != "" {
		cfg.Pipeline.DatabasePath = *dbPath
	}

	if *limit > 0 {
		cfg.Pipeline.Fetch.Limit = *limit
	}

	log := logger.NewLogger(cfg.Pipeline.Logging.Level, cfg.Pipeline.Logging.Format)

	if dsn := cfg.DSN(); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Warn("sentry init failed", "error", err)
		}

		defer sentry.Flush(2 * time.Second)
	}

	log.Info("🚀 Starting news fetch", "database", cfg.Pipeline.DatabasePath)

	st, orch, err := ingest.NewFromConfig(cfg, log)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Pipeline setup failed: %v", err))
		os.Exit(1)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startTime := time.Now()
	result := orch.Run(ctx, cfg.Pipeline.Fetch.Limit, *mock)

	log.Info("✨ Fetch complete", "created", result.TotalCreated())

	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Run %s (mock=%v)\n", result.RunID, result.Mock)
	fmt.Println("------------------------------------------------")
	fmt.Print(report.Summary(result))
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
}
