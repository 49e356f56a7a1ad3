package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/dkm1006/news-graph-rag/internal/config"
	"github.com/dkm1006/news-graph-rag/internal/core"
	"github.com/dkm1006/news-graph-rag/internal/core/model"
	"github.com/dkm1006/news-graph-rag/internal/driver"
	"github.com/dkm1006/news-graph-rag/internal/graph"
	"github.com/dkm1006/news-graph-rag/internal/llm"
	"github.com/dkm1006/news-graph-rag/internal/ner"
)

func main() {
	cfgPath := flag.String("config", "config/config.toml", "path to the TOML config file")
	input := flag.String("input", "articles.json", "path to a JSON file with crawled articles")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment as-is")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal("Failed to load configuration", "path", *cfgPath, "err", err)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatal("Failed to read input file", "path", *input, "err", err)
	}
	var articles []model.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		log.Fatal("Failed to parse input file", "path", *input, "err", err)
	}
	if len(articles) == 0 {
		log.Fatal("Input file contains no articles", "path", *input)
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
	pipeline := core.NewPipeline(graphClient, llmClient, embedder, ner.NewHTTPClient(cfg.NER.BaseURL), cfg)

	ingested := pipeline.IngestAll(ctx, articles)
	log.Info("Ingestion finished", "ingested", ingested, "total", len(articles))
	if ingested < len(articles) {
		os.Exit(1)
	}
}
