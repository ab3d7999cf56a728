// Package nlp implements the Czech text-analysis pipeline: extraction,
// preprocessing, topic modeling over embeddings, semantic similarity, and
// lexicon sentiment scoring.
package nlp

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/tadeasf/czech-nlp/internal/model"
	"github.com/tadeasf/czech-nlp/internal/nlp/czech"
	"github.com/tadeasf/czech-nlp/pkg/embed"
)

const DefaultNumTopics = 10

// ErrNotReady is returned by every analysis invoked before the processor
// finished loading its models and resources.
var ErrNotReady = errors.New("NLP models not initialized")

// Processor owns the loaded language resources and the embedding client.
// All fields are read-only after New returns, so concurrent requests need
// no locking; per-request data never leaves the request.
type Processor struct {
	embedder embed.Embedder
	pre      *Preprocessor
	scorer   *SentimentScorer
	ready    atomic.Bool
}

// New loads the pipeline. It either returns a ready processor or an error;
// a failed load is fatal to the caller, there is no retry.
func New(embedder embed.Embedder, res *czech.Resources) (*Processor, error) {
	if embedder == nil {
		return nil, errors.New("nlp: embedder is required")
	}
	if res == nil {
		res = czech.Default()
	}
	if len(res.PositiveWords) == 0 || len(res.NegativeWords) == 0 {
		return nil, errors.New("nlp: sentiment lexicons must not be empty")
	}
	if len(res.Stopwords) == 0 {
		return nil, errors.New("nlp: stopword list must not be empty")
	}

	p := &Processor{
		embedder: embedder,
		pre:      NewPreprocessor(res),
		scorer:   NewSentimentScorer(res),
	}
	p.ready.Store(true)
	return p, nil
}

// Ready reports whether the models are loaded.
func (p *Processor) Ready() bool {
	return p.ready.Load()
}

// AnalyzeTopics fits a fresh topic model over the documents. numTopics <= 0
// falls back to DefaultNumTopics.
func (p *Processor) AnalyzeTopics(ctx context.Context, docs []model.Document, numTopics int) (*model.TopicAnalysis, error) {
	if !p.ready.Load() {
		return nil, ErrNotReady
	}
	if numTopics <= 0 {
		numTopics = DefaultNumTopics
	}

	cleaned := p.pre.Clean(ExtractTexts(docs, true))

	embeddings, err := p.embedder.EmbedBatch(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("embedding documents: %w", err)
	}

	topics, articleTopics := fitTopics(cleaned, embeddings, numTopics)
	return &model.TopicAnalysis{Topics: topics, ArticleTopics: articleTopics}, nil
}

// AnalyzeSemantics embeds each document (title + description only) and,
// when a query is given, scores cosine similarity of every document
// against the raw query.
func (p *Processor) AnalyzeSemantics(ctx context.Context, docs []model.Document, query string) (*model.SemanticAnalysis, error) {
	if !p.ready.Load() {
		return nil, ErrNotReady
	}

	cleaned := p.pre.Clean(ExtractTexts(docs, false))

	embeddings, err := p.embedder.EmbedBatch(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("embedding documents: %w", err)
	}

	result := &model.SemanticAnalysis{
		Embeddings: make([]model.ArticleEmbedding, len(embeddings)),
	}
	for i, emb := range embeddings {
		result.Embeddings[i] = model.ArticleEmbedding{
			ArticleIndex: i,
			Embedding:    emb,
			TextLength:   utf8.RuneCountInString(cleaned[i]),
		}
	}

	if query != "" {
		queryEmbedding, err := p.embedder.Embed(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("embedding query: %w", err)
		}
		similarities := make([]float64, len(embeddings))
		for i, emb := range embeddings {
			similarities[i] = cosineSimilarity(queryEmbedding, emb)
		}
		result.Similarities = similarities
	}

	return result, nil
}

// AnalyzeSentiment scores each document with the lexicon scorer. Scoring
// runs over the preprocessed text, matching the rest of the pipeline.
func (p *Processor) AnalyzeSentiment(ctx context.Context, docs []model.Document) ([]model.SentimentResult, error) {
	if !p.ready.Load() {
		return nil, ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := p.pre.Clean(ExtractTexts(docs, true))

	results := make([]model.SentimentResult, len(cleaned))
	for i, text := range cleaned {
		result := p.scorer.Score(text)
		result.ArticleIndex = i
		results[i] = result
	}
	return results, nil
}

// BatchAnalysis runs topic, semantic, and sentiment analysis concurrently
// over the same documents and merges the results. The first failure fails
// the whole batch and cancels the in-flight analyses; partial results are
// never returned.
func (p *Processor) BatchAnalysis(ctx context.Context, docs []model.Document) (*model.BatchAnalysis, error) {
	if !p.ready.Load() {
		return nil, ErrNotReady
	}

	var (
		topicResult     *model.TopicAnalysis
		semanticResult  *model.SemanticAnalysis
		sentimentResult []model.SentimentResult
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		topicResult, err = p.AnalyzeTopics(ctx, docs, DefaultNumTopics)
		return err
	})
	g.Go(func() error {
		var err error
		semanticResult, err = p.AnalyzeSemantics(ctx, docs, "")
		return err
	})
	g.Go(func() error {
		var err error
		sentimentResult, err = p.AnalyzeSentiment(ctx, docs)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.BatchAnalysis{
		Topics:        topicResult.Topics,
		ArticleTopics: topicResult.ArticleTopics,
		Embeddings:    semanticResult.Embeddings,
		Sentiments:    sentimentResult,
	}, nil
}
