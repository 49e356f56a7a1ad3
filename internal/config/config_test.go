package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, "neo4j://localhost:7687", cfg.Graph.URI)
	assert.Equal(t, 1100, cfg.Chunking.MaxChunkLen)
	assert.Equal(t, 768, cfg.Embedding.Dimensions)
	assert.Equal(t, 0.8, cfg.Resolver.Fuzziness)
	assert.Equal(t, []string{"person", "organization", "location"}, cfg.NER.Labels)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[graph]
uri = "neo4j+s://prod.example.io"
uid_length = 16

[llm]
provider = "openai"
model = "gpt-4o-mini"

[chunking]
max_chunk_len = 800

[resolver]
fuzziness = 0.7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "neo4j+s://prod.example.io", cfg.Graph.URI)
	assert.Equal(t, 16, cfg.Graph.UIDLength)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 800, cfg.Chunking.MaxChunkLen)
	assert.Equal(t, 0.7, cfg.Resolver.Fuzziness)
	// Untouched sections keep their defaults.
	assert.Equal(t, 0.5, cfg.NER.Threshold)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[graph]\nuri = \"neo4j://from-file\"\n"), 0o644))

	t.Setenv("DB_URL", "neo4j://from-env:7687")
	t.Setenv("LLM_PROVIDER", "claude")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "neo4j://from-env:7687", cfg.Graph.URI)
	assert.Equal(t, "claude", cfg.LLM.Provider)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[graph\nbroken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOML")
}
