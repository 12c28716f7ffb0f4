package ingest

import (
	"fmt"

	"newswire/internal/classify"
	"newswire/internal/config"
	"newswire/internal/logger"
	"newswire/internal/provider"
	"newswire/internal/store"
)

// NewFromConfig wires the full pipeline from configuration: storage,
// classifier, the shared HTTP client and one adapter per enabled
// provider, in configured order. The caller owns closing the store.
func NewFromConfig(cfg *config.Config, log *logger.Logger) (*store.Store, *Orchestrator, error) {
	st, err := store.New(cfg.Pipeline.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	client := provider.NewClientWithConfig(
		cfg.Pipeline.Fetch.GetTimeout(),
		cfg.Pipeline.Fetch.RequestsPerSec,
	)

	var adapters []provider.Adapter

	for _, pc := range cfg.EnabledProviders() {
		switch pc.Name {
		case config.ProviderNewsAPI:
			adapters = append(adapters, provider.NewNewsAPIAdapter(client, pc.APIKey(), log))
		case config.ProviderGNews:
			adapters = append(adapters, provider.NewGNewsAdapter(client, pc.APIKey(), log))
		}
	}

	classifier := classify.NewClassifier(st, log)
	orch := NewOrchestrator(st, classifier, adapters, log)

	if cfg.Pipeline.Retention.Enabled {
		orch.EnableRetention(cfg.Pipeline.Retention.MaxAgeDays)
	}

	return st, orch, nil
}
