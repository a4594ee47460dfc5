package service

import (
	"context"

	pgvector "github.com/pgvector/pgvector-go"

	"github.com/quenchlab/barkeep/internal/store"
)

// EmbeddingServiceInterface generates fixed-length vector embeddings from
// text. The model is chosen once at construction; the same text always
// yields the same vector for a given model version.
type EmbeddingServiceInterface interface {
	GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GenerateEmbeddingBatch(ctx context.Context, texts []string) ([]pgvector.Vector, error)
	Dimensions() int
	ModelName() string
}

// SimilaritySearcher is the slice of the catalog store the recommender needs.
type SimilaritySearcher interface {
	SearchSimilar(ctx context.Context, query pgvector.Vector, limit int, threshold float64) []store.Match
}
