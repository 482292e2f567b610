package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewStore(dir)

	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestLoad_MissingFileYieldsEmptyConfig(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	cfg, err := store.Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.OpenAI.APIKey)
	assert.Zero(t, cfg.Ask.RetrieveTopK)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	original := &Config{
		OpenAI: OpenAIConfig{
			APIKey: "sk-test",
			Model:  "text-embedding-3-small",
		},
		Anthropic: AnthropicConfig{
			APIKey: "sk-ant-test",
			Model:  "claude-3-5-sonnet-latest",
		},
		Ask: AskConfig{
			RetrieveTopK:    20,
			RerankTopN:      3,
			MaxAnswerTokens: 500,
		},
		Ingest: IngestConfig{
			MaxChunkSize: 800,
		},
	}
	require.NoError(t, store.Save(original))

	loaded, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSave_RestrictsPermissions(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save(&Config{}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoad_ParsesHandWrittenTOML(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	content := `
[openai]
api_key = "sk-abc"
dimensions = 256

[ask]
retrieve_top_k = 15
`
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	cfg, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, "sk-abc", cfg.OpenAI.APIKey)
	assert.Equal(t, 256, cfg.OpenAI.Dimensions)
	assert.Equal(t, 15, cfg.Ask.RetrieveTopK)
}

func TestLoad_MalformedTOML(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path(), []byte("not = [valid"), 0600))

	_, err = store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
