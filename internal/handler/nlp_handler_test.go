package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/tadeasf/czech-nlp/internal/model"
	"github.com/tadeasf/czech-nlp/internal/nlp"
)

type fakeAnalyzer struct {
	topics       *model.TopicAnalysis
	semantic     *model.SemanticAnalysis
	sentiments   []model.SentimentResult
	batch        *model.BatchAnalysis
	err          error
	gotNumTopics int
	gotQuery     string
	gotDocs      []model.Document
}

func (f *fakeAnalyzer) AnalyzeTopics(ctx context.Context, docs []model.Document, numTopics int) (*model.TopicAnalysis, error) {
	f.gotDocs = docs
	f.gotNumTopics = numTopics
	return f.topics, f.err
}

func (f *fakeAnalyzer) AnalyzeSemantics(ctx context.Context, docs []model.Document, query string) (*model.SemanticAnalysis, error) {
	f.gotDocs = docs
	f.gotQuery = query
	return f.semantic, f.err
}

func (f *fakeAnalyzer) AnalyzeSentiment(ctx context.Context, docs []model.Document) ([]model.SentimentResult, error) {
	f.gotDocs = docs
	return f.sentiments, f.err
}

func (f *fakeAnalyzer) BatchAnalysis(ctx context.Context, docs []model.Document) (*model.BatchAnalysis, error) {
	f.gotDocs = docs
	return f.batch, f.err
}

func newTestRouter(analyzer Analyzer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNLPHandler(analyzer)
	r.GET("/health", h.Health)
	r.POST("/topics", h.AnalyzeTopics)
	r.POST("/semantic", h.AnalyzeSemantics)
	r.POST("/sentiment", h.AnalyzeSentiment)
	r.POST("/batch-analysis", h.BatchAnalysis)
	return r
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "czech-nlp", res["service"])
}

func TestAnalyzeTopics(t *testing.T) {
	analyzer := &fakeAnalyzer{
		topics: &model.TopicAnalysis{
			Topics: []model.Topic{
				{TopicID: 0, Count: 2, Words: []string{"vláda"}, Weights: []float64{1.5}},
			},
			ArticleTopics: []model.ArticleTopic{
				{ArticleIndex: 0, PrimaryTopic: 0, TopicProbabilities: []float64{1.0}, Confidence: 1.0},
				{ArticleIndex: 1, PrimaryTopic: 0, TopicProbabilities: []float64{1.0}, Confidence: 1.0},
			},
		},
	}
	r := newTestRouter(analyzer)

	body := `{"articles":[{"id":1,"title":"Jedna"},{"id":2,"title":"Dvě"}],"num_topics":5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/topics", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, analyzer.gotNumTopics)
	assert.Equal(t, 2, len(analyzer.gotDocs))
	assert.Equal(t, "Jedna", analyzer.gotDocs[0].Title)

	var res TopicsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Topics))
	assert.Equal(t, 2, len(res.ArticleTopics))
	assert.Equal(t, "vláda", res.Topics[0].Words[0])
}

func TestAnalyzeTopicsMalformedBody(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/topics", strings.NewReader(`{"articles": "nope"`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeTopicsMissingTitle(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{})

	body := `{"articles":[{"id":1,"description":"bez titulku"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/topics", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeTopicsNotReady(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{err: nlp.ErrNotReady})

	body := `{"articles":[{"id":1,"title":"Jedna"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/topics", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "NLP models not initialized", res["detail"])
}

func TestAnalyzeSemantics(t *testing.T) {
	analyzer := &fakeAnalyzer{
		semantic: &model.SemanticAnalysis{
			Embeddings: []model.ArticleEmbedding{
				{ArticleIndex: 0, Embedding: []float64{0.1, 0.2}, TextLength: 12},
			},
			Similarities: []float64{0.87},
		},
	}
	r := newTestRouter(analyzer)

	body := `{"articles":[{"id":1,"title":"Jedna"}],"query":"rozpočet"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/semantic", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rozpočet", analyzer.gotQuery)

	var res SemanticResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Embeddings))
	assert.Equal(t, 12, res.Embeddings[0].TextLength)
	assert.Equal(t, 1, len(res.Similarities))
}

func TestAnalyzeSemanticsWithoutQuerySimilaritiesNull(t *testing.T) {
	analyzer := &fakeAnalyzer{
		semantic: &model.SemanticAnalysis{
			Embeddings: []model.ArticleEmbedding{
				{ArticleIndex: 0, Embedding: []float64{0.1}, TextLength: 5},
			},
		},
	}
	r := newTestRouter(analyzer)

	body := `{"articles":[{"id":1,"title":"Jedna"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/semantic", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if !strings.Contains(w.Body.String(), `"similarities":null`) {
		t.Errorf("expected null similarities, got %s", w.Body.String())
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	analyzer := &fakeAnalyzer{
		sentiments: []model.SentimentResult{
			{ArticleIndex: 0, Sentiment: model.SentimentPositive, Confidence: 0.9, Polarity: 1.0, Subjectivity: 1.0},
		},
	}
	r := newTestRouter(analyzer)

	body := `{"articles":[{"id":1,"title":"Skvělý den"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/sentiment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SentimentResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Sentiments))
	assert.Equal(t, "positive", res.Sentiments[0].Sentiment)
}

func TestBatchAnalysis(t *testing.T) {
	analyzer := &fakeAnalyzer{
		batch: &model.BatchAnalysis{
			Topics: []model.Topic{{TopicID: 0, Count: 2, Words: []string{"vláda"}, Weights: []float64{1.0}}},
			ArticleTopics: []model.ArticleTopic{
				{ArticleIndex: 0, PrimaryTopic: 0, TopicProbabilities: []float64{1.0}, Confidence: 1.0},
				{ArticleIndex: 1, PrimaryTopic: 0, TopicProbabilities: []float64{1.0}, Confidence: 1.0},
			},
			Embeddings: []model.ArticleEmbedding{
				{ArticleIndex: 0, Embedding: []float64{0.1}, TextLength: 4},
				{ArticleIndex: 1, Embedding: []float64{0.2}, TextLength: 6},
			},
			Sentiments: []model.SentimentResult{
				{ArticleIndex: 0, Sentiment: model.SentimentNeutral, Confidence: 0.5},
				{ArticleIndex: 1, Sentiment: model.SentimentNeutral, Confidence: 0.5},
			},
		},
	}
	r := newTestRouter(analyzer)

	// batch endpoint takes a bare array
	body := `[{"id":1,"title":"Jedna"},{"id":2,"title":"Dvě"}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/batch-analysis", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, len(analyzer.gotDocs))

	var res BatchResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.ArticleTopics))
	assert.Equal(t, 2, len(res.Embeddings))
	assert.Equal(t, 2, len(res.Sentiments))
	for i := range res.Sentiments {
		assert.Equal(t, i, res.ArticleTopics[i].ArticleIndex)
		assert.Equal(t, i, res.Embeddings[i].ArticleIndex)
		assert.Equal(t, i, res.Sentiments[i].ArticleIndex)
	}
}

func TestBatchAnalysisMalformedBody(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/batch-analysis", strings.NewReader(`{"articles":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
