package service

import (
	"context"
	"log"
	"math"
	"strings"

	pgvector "github.com/pgvector/pgvector-go"

	"github.com/quenchlab/barkeep/internal/store"
)

const (
	// DefaultLimit caps recommendation results when the caller passes none.
	DefaultLimit = 10
	// DefaultThreshold is the minimum cosine similarity a match must exceed.
	DefaultThreshold = 0.3
)

// Preferences are the structured inputs a recommendation query is built from.
type Preferences struct {
	Ingredients []string `json:"ingredients"`
	Styles      []string `json:"styles"`
	Occasion    string   `json:"occasion"`
	Alcoholic   string   `json:"alcoholic"`
}

// Empty reports whether no preference kind was supplied.
func (p Preferences) Empty() bool {
	return len(p.Ingredients) == 0 && len(p.Styles) == 0 && p.Occasion == "" && p.Alcoholic == ""
}

// Phrase builds the natural-language query text from the structured
// preferences using one fixed template per preference kind.
func (p Preferences) Phrase() string {
	var parts []string
	if len(p.Ingredients) > 0 {
		parts = append(parts, "contains "+strings.Join(p.Ingredients, " and "))
	}
	if len(p.Styles) > 0 {
		parts = append(parts, "is "+strings.Join(p.Styles, " and "))
	}
	if p.Occasion != "" {
		parts = append(parts, "perfect for "+p.Occasion)
	}
	if p.Alcoholic != "" {
		parts = append(parts, "is "+p.Alcoholic)
	}
	return strings.Join(parts, " ")
}

// Recommendation is a similarity match plus its display percentage.
// MatchPercent is the 0-1 similarity scaled to 0-100, one decimal.
type Recommendation struct {
	store.Match
	MatchPercent float64 `json:"match_percent"`
}

// RecommenderService answers preference queries against the catalog. Each
// query is stateless; no session or cursor state survives a call.
type RecommenderService struct {
	store    SimilaritySearcher
	embedder EmbeddingServiceInterface
	cache    *EmbeddingCache
}

// NewRecommenderService creates a new RecommenderService instance. cache
// may be nil to disable embedding caching.
func NewRecommenderService(store SimilaritySearcher, embedder EmbeddingServiceInterface, cache *EmbeddingCache) *RecommenderService {
	return &RecommenderService{
		store:    store,
		embedder: embedder,
		cache:    cache,
	}
}

// Recommend returns up to limit catalog records whose embedding similarity
// to the preference phrase exceeds threshold, best matches first. With no
// preferences supplied it returns nothing without touching the model or
// the store.
func (s *RecommenderService) Recommend(ctx context.Context, prefs Preferences, limit int, threshold float64) []Recommendation {
	if prefs.Empty() {
		return nil
	}
	return s.search(ctx, prefs.Phrase(), limit, threshold)
}

// RecommendByIngredients recommends cocktails containing the given
// ingredients.
func (s *RecommenderService) RecommendByIngredients(ctx context.Context, ingredients []string, limit int) []Recommendation {
	if len(ingredients) == 0 {
		return nil
	}
	return s.search(ctx, "cocktail with "+strings.Join(ingredients, " and "), limit, DefaultThreshold)
}

// RecommendByStyle recommends cocktails matching a style or mood
// (sweet, strong, fruity).
func (s *RecommenderService) RecommendByStyle(ctx context.Context, styles []string, limit int) []Recommendation {
	if len(styles) == 0 {
		return nil
	}
	return s.search(ctx, "cocktail that is "+strings.Join(styles, " and "), limit, DefaultThreshold)
}

// RecommendByOccasion recommends cocktails for an occasion
// (party, relaxing, summer).
func (s *RecommenderService) RecommendByOccasion(ctx context.Context, occasion string, limit int) []Recommendation {
	if occasion == "" {
		return nil
	}
	return s.search(ctx, "cocktail for "+occasion, limit, DefaultThreshold)
}

// search embeds the phrase exactly once and delegates the scan to the
// store. Like the store's read paths, embedding failures degrade to an
// empty result set and a logged diagnostic.
func (s *RecommenderService) search(ctx context.Context, phrase string, limit int, threshold float64) []Recommendation {
	vec, err := s.embedPhrase(ctx, phrase)
	if err != nil {
		log.Printf("Error embedding preference phrase: %v", err)
		return nil
	}

	matches := s.store.SearchSimilar(ctx, vec, limit, threshold)
	recommendations := make([]Recommendation, 0, len(matches))
	for _, m := range matches {
		recommendations = append(recommendations, Recommendation{
			Match:        m,
			MatchPercent: math.Round(m.Similarity*1000) / 10,
		})
	}
	return recommendations
}

func (s *RecommenderService) embedPhrase(ctx context.Context, phrase string) (pgvector.Vector, error) {
	if s.cache != nil {
		if vec, ok := s.cache.Get(ctx, phrase); ok {
			return vec, nil
		}
	}
	vec, err := s.embedder.GenerateEmbedding(ctx, phrase)
	if err != nil {
		return pgvector.Vector{}, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, phrase, vec)
	}
	return vec, nil
}
