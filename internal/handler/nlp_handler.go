package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tadeasf/czech-nlp/internal/model"
)

type Analyzer interface {
	AnalyzeTopics(ctx context.Context, docs []model.Document, numTopics int) (*model.TopicAnalysis, error)
	AnalyzeSemantics(ctx context.Context, docs []model.Document, query string) (*model.SemanticAnalysis, error)
	AnalyzeSentiment(ctx context.Context, docs []model.Document) ([]model.SentimentResult, error)
	BatchAnalysis(ctx context.Context, docs []model.Document) (*model.BatchAnalysis, error)
}

type NLPHandler struct {
	analyzer Analyzer
}

func NewNLPHandler(analyzer Analyzer) *NLPHandler {
	return &NLPHandler{analyzer: analyzer}
}

func (h *NLPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "czech-nlp"})
}

func (h *NLPHandler) AnalyzeTopics(c *gin.Context) {
	var req TopicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.analyzer.AnalyzeTopics(c.Request.Context(), toDocuments(req.Articles), req.NumTopics)
	if err != nil {
		slog.Error("error in topic modeling", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TopicsResponse{
		Topics:        toTopicResponses(result.Topics),
		ArticleTopics: toArticleTopicResponses(result.ArticleTopics),
	})
}

func (h *NLPHandler) AnalyzeSemantics(c *gin.Context) {
	var req SemanticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.analyzer.AnalyzeSemantics(c.Request.Context(), toDocuments(req.Articles), req.Query)
	if err != nil {
		slog.Error("error in semantic analysis", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SemanticResponse{
		Embeddings:   toEmbeddingResponses(result.Embeddings),
		Similarities: result.Similarities,
	})
}

func (h *NLPHandler) AnalyzeSentiment(c *gin.Context) {
	var req SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	sentiments, err := h.analyzer.AnalyzeSentiment(c.Request.Context(), toDocuments(req.Articles))
	if err != nil {
		slog.Error("error in sentiment analysis", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SentimentResponse{Sentiments: toSentimentResponses(sentiments)})
}

// BatchAnalysis takes a bare JSON array of articles and runs all three
// analyses over it.
func (h *NLPHandler) BatchAnalysis(c *gin.Context) {
	var articles []ArticleRequest
	if err := c.ShouldBindJSON(&articles); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.analyzer.BatchAnalysis(c.Request.Context(), toDocuments(articles))
	if err != nil {
		slog.Error("error in batch analysis", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, BatchResponse{
		Topics:        toTopicResponses(result.Topics),
		ArticleTopics: toArticleTopicResponses(result.ArticleTopics),
		Embeddings:    toEmbeddingResponses(result.Embeddings),
		Sentiments:    toSentimentResponses(result.Sentiments),
	})
}
