package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/dkm1006/news-graph-rag/internal/config"
	"github.com/dkm1006/news-graph-rag/internal/graph"
	"github.com/dkm1006/news-graph-rag/internal/ner"
)

type executedQuery struct {
	Query  string
	Params map[string]interface{}
}

// MockDriver records every executed query and returns canned results, one
// per call (the last result repeats once the queue is drained).
type MockDriver struct {
	Executed    []executedQuery
	ResultQueue []neo4j.EagerResult
	Err         error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Executed = append(m.Executed, executedQuery{Query: query, Params: params})
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	if len(m.ResultQueue) == 0 {
		return neo4j.EagerResult{}, nil
	}
	result := m.ResultQueue[0]
	if len(m.ResultQueue) > 1 {
		m.ResultQueue = m.ResultQueue[1:]
	}
	return result, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context, vectorDims int) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

func record(keys []string, values []interface{}) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

// MockLLM replays canned responses in order and records every prompt.
type MockLLM struct {
	Prompts   []string
	Responses []string
	Err       error
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	response := m.Responses[0]
	if len(m.Responses) > 1 {
		m.Responses = m.Responses[1:]
	}
	return response, nil
}

// MockEmbedder returns one deterministic vector per input text.
type MockEmbedder struct {
	Calls [][]string
	Dims  int
	Err   error
}

func (m *MockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	m.Calls = append(m.Calls, texts)
	if m.Err != nil {
		return nil, m.Err
	}
	dims := m.Dims
	if dims == 0 {
		dims = 4
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vector := make([]float32, dims)
		vector[0] = float32(i + 1)
		vectors[i] = vector
	}
	return vectors, nil
}

// MockNER returns spans for texts registered via Recognize; unregistered
// texts yield no spans.
type MockNER struct {
	Spans map[string][]ner.Span
	Texts []string
	Err   error
}

func (m *MockNER) Extract(ctx context.Context, text string, labels []string, threshold float64) ([]ner.Span, error) {
	m.Texts = append(m.Texts, text)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Spans[text], nil
}

// Recognize registers a span for the first occurrence of name inside text.
func (m *MockNER) Recognize(text, name, label string) {
	start := strings.Index(text, name)
	if start < 0 {
		panic(fmt.Sprintf("%q not found in %q", name, text))
	}
	if m.Spans == nil {
		m.Spans = make(map[string][]ner.Span)
	}
	m.Spans[text] = append(m.Spans[text], ner.Span{
		Start: start,
		End:   start + len(name),
		Label: label,
		Text:  name,
		Score: 0.9,
	})
}

func newTestPipeline(driver *MockDriver, llmClient *MockLLM, embedder *MockEmbedder, nerClient *MockNER) *Pipeline {
	return NewPipeline(graph.NewClient(driver, graph.Options{}), llmClient, embedder, nerClient, config.Default())
}
