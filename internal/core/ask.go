package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dkm1006/news-graph-rag/internal/core/model"
	"github.com/dkm1006/news-graph-rag/internal/ner"
)

// GenerateCypher turns a natural-language question into a Cypher query.
// Entities recognized in the question are resolved against the graph's
// full-text indexes and handed to the model as grounded name candidates, so
// the generated query matches names as they exist in the database rather
// than as the user spelled them.
func (p *Pipeline) GenerateCypher(ctx context.Context, question string) (string, []model.Candidate, error) {
	spans, err := p.NER.Extract(ctx, question, p.NERCfg.Labels, p.NERCfg.Threshold)
	if err != nil {
		return "", nil, fmt.Errorf("ner failed for question: %w", err)
	}

	var entities []model.Entity
	for _, span := range ner.MergeSpans(question, spans) {
		entities = append(entities, model.Entity{
			Name:  span.Text,
			Label: model.EntityLabel(strings.ToLower(span.Label)),
		})
	}

	candidates, err := p.Graph.ResolveEntities(ctx, entities)
	if err != nil {
		return "", nil, err
	}

	prompt := fmt.Sprintf(cypherGenerationTemplate, graphSchema, CandidatesToContext(candidates), question)
	response, err := p.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", nil, fmt.Errorf("cypher generation failed: %w", err)
	}
	return stripCodeFence(response), candidates, nil
}

// Answer executes the given Cypher query and asks the model to answer the
// question from the returned rows. Query errors are surfaced to the caller;
// an answer is never fabricated from an empty or failed retrieval.
func (p *Pipeline) Answer(ctx context.Context, question, cypher string) (string, error) {
	rows, err := p.Graph.Query(ctx, cypher, nil)
	if err != nil {
		return "", fmt.Errorf("retrieval query failed: %w", err)
	}

	prompt := fmt.Sprintf(answerTemplate, cypher, RecordsToContext(rows), question)
	answer, err := p.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("answer generation failed: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

// Ask runs the full question-answering pipeline and returns the answer along
// with the Cypher query used for retrieval.
func (p *Pipeline) Ask(ctx context.Context, question string) (answer, cypher string, err error) {
	cypher, candidates, err := p.GenerateCypher(ctx, question)
	if err != nil {
		return "", "", err
	}
	log.Debug("Generated retrieval query", "cypher", cypher, "candidates", len(candidates))

	answer, err = p.Answer(ctx, question, cypher)
	if err != nil {
		return "", cypher, err
	}
	return answer, cypher, nil
}
