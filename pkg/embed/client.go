// Package embed provides clients for the sentence embedding model. The
// default client talks to the OpenAI embeddings API; an Ollama client
// covers local models, and a Redis-backed decorator caches vectors.
package embed

import "context"

// Embedder maps text to a fixed-length dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}
