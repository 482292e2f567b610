// Package file loads and persists application configuration as TOML.
// Configuration lives in ~/.docq/config.toml unless overridden.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk configuration.
type Config struct {
	OpenAI    OpenAIConfig    `toml:"openai"`
	Anthropic AnthropicConfig `toml:"anthropic"`
	Storage   StorageConfig   `toml:"storage"`
	Ask       AskConfig       `toml:"ask"`
	Ingest    IngestConfig    `toml:"ingest"`
}

// OpenAIConfig configures the embedding provider.
type OpenAIConfig struct {
	APIKey     string `toml:"api_key"`
	BaseURL    string `toml:"base_url"`
	Model      string `toml:"model"`
	Dimensions int    `toml:"dimensions"`
}

// AnthropicConfig configures the generation provider.
type AnthropicConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// StorageConfig configures where the document database lives.
type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

// AskConfig tunes the question answering pipeline. Zero values fall back
// to the service defaults.
type AskConfig struct {
	RetrieveTopK    int `toml:"retrieve_top_k"`
	RerankTopN      int `toml:"rerank_top_n"`
	MaxAnswerTokens int `toml:"max_answer_tokens"`

	// SimilarityWeight and KeywordWeight override the re-rank score blend.
	// Unless both are positive the defaults apply.
	SimilarityWeight float64 `toml:"similarity_weight"`
	KeywordWeight    float64 `toml:"keyword_weight"`
}

// IngestConfig tunes document ingestion.
type IngestConfig struct {
	MaxChunkSize    int `toml:"max_chunk_size"`
	ChunkOverlap    int `toml:"chunk_overlap"`
	EmbedIntervalMS int `toml:"embed_interval_ms"`
}

// Store reads and writes a Config at a fixed path.
type Store struct {
	filePath string
}

// NewStore creates a config store rooted at configDir. If configDir is
// empty, defaults to ~/.docq.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".docq")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	return &Store{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads the configuration file. A missing file yields an empty
// Config, not an error; callers fill in API keys from the environment.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration with restricted permissions; the file may
// carry API keys.
func (s *Store) Save(cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.filePath
}
