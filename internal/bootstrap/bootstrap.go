// Package bootstrap wires configuration into a ready dialogue engine.
package bootstrap

import (
	"os"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
	"github.com/aishuu11/hackathon-2025/internal/config"
	"github.com/aishuu11/hackathon-2025/internal/dialogue"
	"github.com/aishuu11/hackathon-2025/internal/observability"
	"github.com/aishuu11/hackathon-2025/internal/spelling"
)

// NewLogger creates the service logger described by cfg.
func NewLogger(cfg *config.Config) *observability.Logger {
	return observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		Output:      os.Stderr,
		ServiceName: cfg.Observability.ServiceName,
	})
}

// CatalogFiles maps the catalog section of cfg to document names.
func CatalogFiles(cfg *config.Config) catalog.Files {
	return catalog.Files{
		Foods:     cfg.Catalog.FoodsFile,
		Myths:     cfg.Catalog.MythsFile,
		Messages:  cfg.Catalog.MessagesFile,
		Questions: cfg.Catalog.QuestionsFile,
	}
}

// LoadCatalogs loads the data directory. Broken documents are logged and
// treated as empty.
func LoadCatalogs(cfg *config.Config, logger *observability.Logger) *catalog.Set {
	set, err := catalog.LoadSet(cfg.Catalog.DataDir, CatalogFiles(cfg))
	if err != nil {
		logger.Warn().Err(err).Str("data_dir", cfg.Catalog.DataDir).Msg("Catalog degraded, continuing with partial data")
	}

	logger.Info().
		Int("foods", set.Foods.Len()).
		Int("myths", set.Myths.Len()).
		Int("message_keys", len(set.Messages)).
		Int("questions", set.Questions.Len()).
		Msg("Catalogs loaded")
	return set
}

// EngineConfig maps the matching and spelling sections of cfg.
func EngineConfig(cfg *config.Config, set *catalog.Set) dialogue.EngineConfig {
	ec := dialogue.EngineConfig{
		Match: dialogue.MatchConfig{
			FoodThreshold:       cfg.Matching.FoodThreshold,
			MythThreshold:       cfg.Matching.MythThreshold,
			ContainmentFloor:    cfg.Matching.MythContainmentFloor,
			ContainmentOverride: cfg.Matching.MythContainmentOverride,
		},
	}
	if cfg.Spelling.Enabled {
		ec.Corrector = spelling.NewCorrector(set.Vocabulary(), cfg.Spelling.Cutoff, cfg.Spelling.MinWordLength)
	}
	return ec
}

// NewEngine loads catalogs and builds the engine.
func NewEngine(cfg *config.Config, logger *observability.Logger) (*dialogue.Engine, *catalog.Set) {
	set := LoadCatalogs(cfg, logger)
	return dialogue.NewEngine(logger, set, EngineConfig(cfg, set)), set
}
