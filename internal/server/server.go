// Package server exposes the ingestion and question-answering pipelines over
// HTTP.
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/dkm1006/news-graph-rag/internal/core"
	"github.com/dkm1006/news-graph-rag/internal/core/model"
)

type Server struct {
	Pipeline *core.Pipeline
}

func NewServer(p *core.Pipeline) *Server {
	return &Server{Pipeline: p}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/articles", s.IngestArticles)
	r.GET("/articles/:uid/chunks", s.ArticleChunks)
	r.POST("/ask", s.Ask)
	r.GET("/healthz", s.Health)

	return r
}

type IngestRequest struct {
	Articles []model.Article `json:"articles"`
}

// IngestArticles ingests a batch of crawled articles. Failing articles are
// skipped; the response reports how many of the batch made it in.
func (s *Server) IngestArticles(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if len(req.Articles) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No articles given"})
		return
	}

	ingested := s.Pipeline.IngestAll(c.Request.Context(), req.Articles)

	c.JSON(http.StatusOK, gin.H{"ingested": ingested, "received": len(req.Articles)})
}

// ArticleChunks returns the stored chunks of one article in document order.
func (s *Server) ArticleChunks(c *gin.Context) {
	uid := c.Param("uid")

	byArticle, err := s.Pipeline.Graph.ArticleChunks(c.Request.Context(), []string{uid})
	if err != nil {
		log.Error("Failed to fetch chunks", "article_uid", uid, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chunks"})
		return
	}
	chunks, ok := byArticle[uid]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article_uid": uid, "chunks": chunks})
}

type AskRequest struct {
	Question string `json:"question"`
}

// Ask answers a natural-language question from the graph. The generated
// Cypher query is returned alongside the answer so callers can inspect what
// was actually retrieved.
func (s *Server) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	answer, cypher, err := s.Pipeline.Ask(c.Request.Context(), req.Question)
	if err != nil {
		log.Error("Failed to answer question", "question", req.Question, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to answer question", "cypher": cypher})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer, "cypher": cypher})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
