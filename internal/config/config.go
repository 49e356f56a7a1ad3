package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type GraphConfig struct {
	URI       string `toml:"uri"`
	User      string `toml:"user"`
	Password  string `toml:"password"`
	UIDLength int    `toml:"uid_length"`
}

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	EmbeddingModel string `toml:"embedding_model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
}

type NERConfig struct {
	BaseURL   string   `toml:"base_url"`
	Labels    []string `toml:"labels"`
	Threshold float64  `toml:"threshold"`
}

type ChunkingConfig struct {
	MaxChunkLen    int `toml:"max_chunk_len"`
	MinSentenceLen int `toml:"min_sentence_len"`
}

type EmbeddingConfig struct {
	Dimensions int `toml:"dimensions"`
}

type ResolverConfig struct {
	Fuzziness      float64 `toml:"fuzziness"`
	CandidateLimit int     `toml:"candidate_limit"`
}

type Config struct {
	Graph     GraphConfig     `toml:"graph"`
	LLM       LLMConfig       `toml:"llm"`
	NER       NERConfig       `toml:"ner"`
	Chunking  ChunkingConfig  `toml:"chunking"`
	Embedding EmbeddingConfig `toml:"embedding"`
	Resolver  ResolverConfig  `toml:"resolver"`
}

// Default returns a config with every knob at its documented default.
func Default() *Config {
	return &Config{
		Graph: GraphConfig{
			URI:       "neo4j://localhost:7687",
			User:      "neo4j",
			UIDLength: 12,
		},
		LLM: LLMConfig{
			Provider: "ollama",
			BaseURL:  "http://localhost:11434",
		},
		NER: NERConfig{
			BaseURL:   "http://localhost:8500",
			Labels:    []string{"person", "organization", "location"},
			Threshold: 0.5,
		},
		Chunking: ChunkingConfig{
			MaxChunkLen:    1100,
			MinSentenceLen: 1,
		},
		Embedding: EmbeddingConfig{
			Dimensions: 768,
		},
		Resolver: ResolverConfig{
			Fuzziness:      0.8,
			CandidateLimit: 10,
		},
	}
}

// Load reads the TOML file at path on top of the defaults, then applies
// environment-variable overrides. A missing file is not an error: defaults
// plus environment are enough to run.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to env overrides
	case err != nil:
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Graph.URI, "DB_URL")
	setString(&c.Graph.User, "DB_USERNAME")
	setString(&c.Graph.Password, "DB_PASSWORD")
	setString(&c.LLM.Provider, "LLM_PROVIDER")
	setString(&c.LLM.Model, "LLM_MODEL")
	setString(&c.LLM.EmbeddingModel, "LLM_EMBEDDING_MODEL")
	setString(&c.LLM.APIKey, "LLM_API_KEY")
	setString(&c.LLM.BaseURL, "LLM_BASE_URL")
	setString(&c.NER.BaseURL, "NER_BASE_URL")
}

func setString(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
