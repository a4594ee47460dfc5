package service

import (
	"context"
	"fmt"

	pgvector "github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"

	"github.com/quenchlab/barkeep/config"
)

// EmbeddingService generates sentence embeddings through an
// OpenAI-compatible embeddings endpoint (Ollama, text-embeddings-inference)
// serving the configured model. The client is constructed once and shared;
// it holds no mutable state, so concurrent callers need no locking.
type EmbeddingService struct {
	client *openai.Client
	model  string
	dims   int
}

// NewEmbeddingService creates a new EmbeddingService instance from the
// deployment configuration.
func NewEmbeddingService(cfg *config.Config) *EmbeddingService {
	clientConfig := openai.DefaultConfig(cfg.EmbeddingAPIKey)
	clientConfig.BaseURL = cfg.EmbeddingAPIURL

	return &EmbeddingService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.ModelName,
		dims:   cfg.EmbeddingDim,
	}
}

// GenerateEmbeddingBatch returns one vector per input text, in input order.
// Every vector is checked against the configured dimensionality so a
// misconfigured model is caught at ingestion rather than at query time.
func (s *EmbeddingService) GenerateEmbeddingBatch(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(s.model),
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("embeddings request failed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embeddings response has %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([]pgvector.Vector, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, fmt.Errorf("embeddings response index %d out of range", d.Index)
		}
		if len(d.Embedding) != s.dims {
			return nil, fmt.Errorf("model %q returned %d-dimensional embedding, expected %d",
				s.model, len(d.Embedding), s.dims)
		}
		vectors[d.Index] = pgvector.NewVector(d.Embedding)
	}
	return vectors, nil
}

// GenerateEmbedding embeds a single text.
func (s *EmbeddingService) GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	vectors, err := s.GenerateEmbeddingBatch(ctx, []string{text})
	if err != nil {
		return pgvector.Vector{}, err
	}
	return vectors[0], nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dims
}

// ModelName returns the configured model identifier.
func (s *EmbeddingService) ModelName() string {
	return s.model
}
