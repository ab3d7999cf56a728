package embed

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 24 * time.Hour

// CachedEmbedder memoizes vectors in Redis, keyed by model and text hash.
// Embedding output is deterministic per model, so cached vectors are safe
// to reuse across requests; topic fitting itself is never cached. Cache
// failures degrade to a plain model call.
type CachedEmbedder struct {
	next  Embedder
	rdb   *redis.Client
	model string
}

func NewCached(next Embedder, rdb *redis.Client, model string) *CachedEmbedder {
	return &CachedEmbedder{next: next, rdb: rdb, model: model}
}

func cacheKey(model, text string) string {
	return fmt.Sprintf("czenlp:emb:%s:%x", model, sha256.Sum256([]byte(text)))
}

func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	key := cacheKey(c.model, text)

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var vec []float64
		if err := json.Unmarshal([]byte(cached), &vec); err == nil {
			return vec, nil
		}
	} else if err != redis.Nil {
		slog.Warn("embedding cache read failed", "error", err)
	}

	vec, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(vec); err == nil {
		if err := c.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
			slog.Warn("embedding cache write failed", "error", err)
		}
	}

	return vec, nil
}

func (c *CachedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	missing := make([]int, 0, len(texts))

	for i, text := range texts {
		cached, err := c.rdb.Get(ctx, cacheKey(c.model, text)).Result()
		if err == nil {
			var vec []float64
			if err := json.Unmarshal([]byte(cached), &vec); err == nil {
				vectors[i] = vec
				continue
			}
		} else if err != redis.Nil {
			slog.Warn("embedding cache read failed", "error", err)
		}
		missing = append(missing, i)
	}
	if len(missing) == 0 {
		return vectors, nil
	}

	uncached := make([]string, len(missing))
	for j, i := range missing {
		uncached[j] = texts[i]
	}

	fresh, err := c.next.EmbedBatch(ctx, uncached)
	if err != nil {
		return nil, err
	}

	for j, i := range missing {
		vectors[i] = fresh[j]
		if data, err := json.Marshal(fresh[j]); err == nil {
			if err := c.rdb.Set(ctx, cacheKey(c.model, texts[i]), data, cacheTTL).Err(); err != nil {
				slog.Warn("embedding cache write failed", "error", err)
			}
		}
	}

	return vectors, nil
}
