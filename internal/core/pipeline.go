// Package core wires the chunking, NER, embedding and graph components into
// the ingestion and question-answering pipelines.
package core

import (
	"github.com/dkm1006/news-graph-rag/internal/config"
	"github.com/dkm1006/news-graph-rag/internal/graph"
	"github.com/dkm1006/news-graph-rag/internal/llm"
	"github.com/dkm1006/news-graph-rag/internal/ner"
)

// Pipeline holds the collaborating services, constructed once at process
// start and passed in by reference.
type Pipeline struct {
	Graph    *graph.Client
	LLM      llm.LLMClient
	Embedder llm.EmbedderClient
	NER      ner.Client

	Chunking config.ChunkingConfig
	NERCfg   config.NERConfig
}

func NewPipeline(g *graph.Client, llmClient llm.LLMClient, embedder llm.EmbedderClient, nerClient ner.Client, cfg *config.Config) *Pipeline {
	return &Pipeline{
		Graph:    g,
		LLM:      llmClient,
		Embedder: embedder,
		NER:      nerClient,
		Chunking: cfg.Chunking,
		NERCfg:   cfg.NER,
	}
}
