package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	pgvector "github.com/pgvector/pgvector-go"
	"github.com/redis/go-redis/v9"

	"github.com/quenchlab/barkeep/config"
)

const embeddingCacheTTL = 24 * time.Hour

// EmbeddingCache caches query-phrase embeddings in Redis so repeated
// queries skip the model. All failures are soft: a broken cache behaves
// like a cache miss.
type EmbeddingCache struct {
	redis *redis.Client
	model string
}

// NewEmbeddingCache creates a new EmbeddingCache instance.
func NewEmbeddingCache(cfg *config.Config) *EmbeddingCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &EmbeddingCache{
		redis: client,
		model: cfg.ModelName,
	}
}

// key derives the cache key from the model and the phrase; embeddings from
// different models must never be mixed.
func (c *EmbeddingCache) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("embed:%s:%s", c.model, hex.EncodeToString(sum[:]))
}

// Get returns the cached embedding for text, if present.
func (c *EmbeddingCache) Get(ctx context.Context, text string) (pgvector.Vector, bool) {
	data, err := c.redis.Get(ctx, c.key(text)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("embedding cache read failed: %v", err)
		}
		return pgvector.Vector{}, false
	}

	var values []float32
	if err := json.Unmarshal(data, &values); err != nil {
		log.Printf("embedding cache entry corrupt, ignoring: %v", err)
		return pgvector.Vector{}, false
	}
	return pgvector.NewVector(values), true
}

// Set stores the embedding for text with a 24h TTL.
func (c *EmbeddingCache) Set(ctx context.Context, text string, vec pgvector.Vector) {
	data, err := json.Marshal(vec.Slice())
	if err != nil {
		log.Printf("failed to marshal embedding for cache: %v", err)
		return
	}
	if err := c.redis.Set(ctx, c.key(text), data, embeddingCacheTTL).Err(); err != nil {
		log.Printf("failed to cache embedding: %v", err)
	}
}
