// Package cli provides the docq command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docq/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docq/internal/adapters/driven/embedding/openai"
	"github.com/custodia-labs/docq/internal/adapters/driven/embedding/throttle"
	"github.com/custodia-labs/docq/internal/adapters/driven/llm/anthropic"
	"github.com/custodia-labs/docq/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docq/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docq/internal/chunker"
	"github.com/custodia-labs/docq/internal/core/ports/driven"
	"github.com/custodia-labs/docq/internal/core/ports/driving"
	"github.com/custodia-labs/docq/internal/core/services"
	"github.com/custodia-labs/docq/internal/logger"
)

// version is the CLI version, overridable at build time via -ldflags.
var version = "0.1.0"

var (
	flagVerbose bool
	flagMemory  bool
	flagDataDir string
)

// Services used by the commands. Wired lazily by ensureServices; tests
// inject mocks directly.
var (
	askService    driving.AskService
	ingestService driving.IngestService
	closers       []io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "docq",
	Short: "Ask questions about your documents",
	Long: `docq ingests PDF and text documents, indexes them with vector
embeddings, and answers natural-language questions grounded in their
content.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		for _, c := range closers {
			c.Close() //nolint:errcheck
		}
		closers = nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&flagMemory, "memory", false, "use an in-memory store (nothing persisted)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.docq/data)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureServices wires the full pipeline on first use. Commands that do
// not touch documents (version, help) never pay the cost.
func ensureServices() error {
	if askService != nil && ingestService != nil {
		return nil
	}

	// Keys may live in a .env file during development.
	_ = godotenv.Load()

	configStore, err := file.NewStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	cfg, err := configStore.Load()
	if err != nil {
		return err
	}
	applyEnvOverrides(cfg)

	embedder, err := openai.NewEmbeddingService(openai.Config{
		APIKey:     cfg.OpenAI.APIKey,
		BaseURL:    cfg.OpenAI.BaseURL,
		Model:      cfg.OpenAI.Model,
		Dimensions: cfg.OpenAI.Dimensions,
	})
	if err != nil {
		return fmt.Errorf("set OPENAI_API_KEY or [openai] api_key in %s: %w", configStore.Path(), err)
	}
	closers = append(closers, embedder)

	throttled := throttle.New(embedder, time.Duration(cfg.Ingest.EmbedIntervalMS)*time.Millisecond)

	llm, err := anthropic.NewLLMService(anthropic.Config{
		APIKey:  cfg.Anthropic.APIKey,
		BaseURL: cfg.Anthropic.BaseURL,
		Model:   cfg.Anthropic.Model,
	})
	if err != nil {
		return fmt.Errorf("set ANTHROPIC_API_KEY or [anthropic] api_key in %s: %w", configStore.Path(), err)
	}
	closers = append(closers, llm)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	closers = append(closers, store)

	var chunkOpts []chunker.Option
	if cfg.Ingest.MaxChunkSize > 0 {
		chunkOpts = append(chunkOpts, chunker.WithMaxChunkSize(cfg.Ingest.MaxChunkSize))
	}
	if cfg.Ingest.ChunkOverlap > 0 {
		chunkOpts = append(chunkOpts, chunker.WithOverlapBudget(cfg.Ingest.ChunkOverlap))
	}

	ingestService = services.NewIngestService(store, throttled, chunker.New(chunkOpts...))
	askService = services.NewAskService(store, throttled, llm, services.AskConfig{
		RetrieveTopK:    cfg.Ask.RetrieveTopK,
		RerankTopN:      cfg.Ask.RerankTopN,
		MaxAnswerTokens: cfg.Ask.MaxAnswerTokens,
		Weights: services.RerankWeights{
			Similarity: cfg.Ask.SimilarityWeight,
			Keyword:    cfg.Ask.KeywordWeight,
		},
	})
	return nil
}

// applyEnvOverrides lets environment variables win over the config file.
func applyEnvOverrides(cfg *file.Config) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		cfg.Anthropic.APIKey = key
	}
}

// openStore picks the document store from the flags and config.
func openStore(cfg *file.Config) (driven.DocumentStore, error) {
	if flagMemory {
		logger.Debug("Using in-memory document store")
		return memory.NewDocumentStore(), nil
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.Storage.DataDir
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening document store: %w", err)
	}
	logger.Debug("Using SQLite store at %s", store.Path())
	return store, nil
}
