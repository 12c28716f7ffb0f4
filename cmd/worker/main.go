// Package main provides the long-running worker that refreshes news on a
// fixed interval until stopped.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newswire/internal/config"
	"newswire/internal/ingest"
	"newswire/internal/logger"
	"newswire/internal/scheduler"

	"github.com/getsentry/sentry-go"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional, defaults apply)")
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

	log := logger.NewLogger(cfg.Pipeline.Logging.Level, cfg.Pipeline.Logging.Format)

	if dsn := cfg.DSN(); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Warn("sentry init failed", "error", err)
		}

		defer sentry.Flush(2 * time.Second)
	}

	log.Info("🚀 Starting news worker", "config", cfg.String())

	st, orch, err := ingest.NewFromConfig(cfg, log)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Worker setup failed: %v", err))
		os.Exit(1)
	}
	defer st.Close()

	sched := scheduler.New(
		orch,
		cfg.Pipeline.Refresh.GetInterval(),
		cfg.Pipeline.Refresh.GetPoll(),
		cfg.Pipeline.Fetch.Limit,
		log,
	)

	sched.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("shutdown signal received")
	sched.Stop()
}
