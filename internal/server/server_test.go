package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkm1006/news-graph-rag/internal/config"
	"github.com/dkm1006/news-graph-rag/internal/core"
	"github.com/dkm1006/news-graph-rag/internal/graph"
	"github.com/dkm1006/news-graph-rag/internal/ner"
)

type stubDriver struct{}

func (stubDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	return neo4j.EagerResult{}, nil
}
func (stubDriver) BuildIndices(ctx context.Context, vectorDims int) error { return nil }
func (stubDriver) Close(ctx context.Context) error                       { return nil }

type stubLLM struct{ responses []string }

func (s *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	response := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return response, nil
}

type stubEmbedder struct{}

func (stubEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 2, 3}
	}
	return vectors, nil
}

type stubNER struct{}

func (stubNER) Extract(ctx context.Context, text string, labels []string, threshold float64) ([]ner.Span, error) {
	return nil, nil
}

func newTestRouter(responses ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	p := core.NewPipeline(
		graph.NewClient(stubDriver{}, graph.Options{}),
		&stubLLM{responses: responses},
		stubEmbedder{},
		stubNER{},
		config.Default(),
	)
	return NewServer(p).SetupRouter()
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestIngestArticles(t *testing.T) {
	body := `{"articles": [{
		"title": "Summit in Brussels",
		"url": "https://news.example.com/summit",
		"body": {"summary": "Leaders met in Brussels."},
		"source": {"publisher": "Example News", "type": "online", "url": "https://news.example.com"}
	}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	newTestRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ingested":1`)
}

func TestIngestArticlesEmptyBatch(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(`{"articles": []}`))
	req.Header.Set("Content-Type", "application/json")

	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAsk(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": "Anything new?"}`))
	req.Header.Set("Content-Type", "application/json")

	newTestRouter("MATCH (n) RETURN n", "Nothing new.").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"answer":"Nothing new."`)
	assert.Contains(t, w.Body.String(), `"cypher":"MATCH (n) RETURN n"`)
}

func TestAskMissingQuestion(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArticleChunksUnknownArticle(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/articles/Article:missing/chunks", nil)

	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
