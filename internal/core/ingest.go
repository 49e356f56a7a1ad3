package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dkm1006/news-graph-rag/internal/core/chunk"
	"github.com/dkm1006/news-graph-rag/internal/core/model"
	"github.com/dkm1006/news-graph-rag/internal/ner"
)

// ChunksFromArticle segments an article body into chunks in document order:
// the summary (section 0), then each section's headline followed by its
// paragraphs (sections 1..n). Positions form a contiguous zero-based
// sequence; empty texts are skipped.
func ChunksFromArticle(article model.Article, maxLen, minSentenceLen int) []model.Chunk {
	var chunks []model.Chunk
	appendChunks := func(text string, category model.ChunkCategory, section int) {
		if strings.TrimSpace(text) == "" {
			return
		}
		for _, piece := range chunk.ChunkText(text, maxLen, minSentenceLen) {
			chunks = append(chunks, model.Chunk{Text: piece, Category: category, Section: section})
		}
	}

	appendChunks(article.Body.Summary, model.CategorySummary, 0)
	for i, section := range article.Body.Sections {
		appendChunks(section.Headline, model.CategoryHeadline, i+1)
		for _, paragraph := range section.Paragraphs {
			appendChunks(paragraph, model.CategoryParagraph, i+1)
		}
	}

	for i := range chunks {
		chunks[i].Position = i
	}
	return chunks
}

// IngestArticle runs the full per-article pipeline: create the article node,
// chunk the body, embed all chunk texts in one batch, upsert chunks with
// embeddings, then source, topics, authors and mentioned entities. The
// returned uid is set as soon as the article node exists, so a later failure
// still leaves the caller enough context to retry manually.
func (p *Pipeline) IngestArticle(ctx context.Context, article model.Article) (string, error) {
	articleUID, err := p.Graph.CreateArticle(ctx, article)
	if err != nil {
		return "", err
	}

	chunks := ChunksFromArticle(article, p.Chunking.MaxChunkLen, p.Chunking.MinSentenceLen)
	for i := range chunks {
		chunks[i].UID = p.Graph.NewUID("Chunk")
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	if p.Embedder == nil {
		return articleUID, fmt.Errorf("no embedder configured")
	}
	vectors, err := p.Embedder.Embed(ctx, texts)
	if err != nil {
		return articleUID, fmt.Errorf("embedding failed: %w", err)
	}
	if len(vectors) != len(chunks) {
		return articleUID, fmt.Errorf("expected %d embeddings, got %d", len(chunks), len(vectors))
	}
	embeddings := make(map[string][]float32, len(chunks))
	for i, c := range chunks {
		embeddings[c.UID] = vectors[i]
	}

	if err := p.Graph.MergeChunks(ctx, chunks, articleUID); err != nil {
		return articleUID, err
	}
	if _, err := p.Graph.MergeEmbeddings(ctx, embeddings); err != nil {
		return articleUID, err
	}
	if err := p.Graph.MergeTopics(ctx, article.Topics, articleUID); err != nil {
		return articleUID, err
	}
	if err := p.Graph.MergeSource(ctx, article.Source, articleUID); err != nil {
		return articleUID, err
	}

	authors := article.Authors
	if len(authors) == 0 && article.Source.Publisher != "" {
		// Articles without a byline are attributed to the publisher.
		authors = []string{article.Source.Publisher}
	}
	if err := p.Graph.MergeAuthors(ctx, authors, articleUID); err != nil {
		return articleUID, err
	}

	mentions, err := p.extractMentions(ctx, chunks)
	if err != nil {
		return articleUID, err
	}
	if err := p.Graph.MergeMentions(ctx, mentions, articleUID); err != nil {
		return articleUID, err
	}

	return articleUID, nil
}

// IngestAll ingests articles one at a time. A failing article is logged with
// whatever uid is known and skipped; the run continues. Returns the number
// of successfully ingested articles.
func (p *Pipeline) IngestAll(ctx context.Context, articles []model.Article) int {
	ingested := 0
	for _, article := range articles {
		articleUID, err := p.IngestArticle(ctx, article)
		if err != nil {
			log.Error("Skipping article after ingestion failure",
				"url", article.URL, "article_uid", articleUID, "err", err)
			continue
		}
		log.Info("Ingested article", "article_uid", articleUID, "title", article.Title)
		ingested++
	}
	return ingested
}

// extractMentions runs NER over every chunk, consolidates adjacent spans and
// maps them to mention records keyed by chunk position.
func (p *Pipeline) extractMentions(ctx context.Context, chunks []model.Chunk) ([]model.Mention, error) {
	var mentions []model.Mention
	for _, c := range chunks {
		spans, err := p.NER.Extract(ctx, c.Text, p.NERCfg.Labels, p.NERCfg.Threshold)
		if err != nil {
			return nil, fmt.Errorf("ner failed for chunk %d: %w", c.Position, err)
		}
		for _, span := range ner.MergeSpans(c.Text, spans) {
			if span.Score < p.NERCfg.Threshold {
				continue
			}
			mentions = append(mentions, model.Mention{
				Entity: model.Entity{
					Name:  span.Text,
					Label: model.EntityLabel(strings.ToLower(span.Label)),
				},
				ChunkPosition: c.Position,
			})
		}
	}
	return mentions, nil
}
