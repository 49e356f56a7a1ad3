package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/dkm1006/news-graph-rag/internal/config"
	"github.com/dkm1006/news-graph-rag/internal/core"
	"github.com/dkm1006/news-graph-rag/internal/driver"
	"github.com/dkm1006/news-graph-rag/internal/graph"
	"github.com/dkm1006/news-graph-rag/internal/llm"
	"github.com/dkm1006/news-graph-rag/internal/ner"
	"github.com/dkm1006/news-graph-rag/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment as-is")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("Failed to load configuration", "path", cfgPath, "err", err)
	}

	ctx := context.Background()

	d, err := driver.NewNeo4jDriver(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", "uri", cfg.Graph.URI, "err", err)
	}
	defer d.Close(ctx)

	if err := d.BuildIndices(ctx, cfg.Embedding.Dimensions); err != nil {
		log.Fatal("Failed to build indices", "err", err)
	}

	llmClient, embedder, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatal("Failed to initialize LLM client", "provider", cfg.LLM.Provider, "err", err)
	}

	graphClient := graph.NewClient(d, graph.Options{
		UIDLength:      cfg.Graph.UIDLength,
		Fuzziness:      cfg.Resolver.Fuzziness,
		CandidateLimit: cfg.Resolver.CandidateLimit,
	})
	nerClient := ner.NewHTTPClient(cfg.NER.BaseURL)
	pipeline := core.NewPipeline(graphClient, llmClient, embedder, nerClient, cfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := server.NewServer(pipeline).SetupRouter()
	log.Info("Starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server stopped", "err", err)
	}
}
