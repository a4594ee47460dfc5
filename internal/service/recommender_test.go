package service

import (
	"context"
	"testing"

	pgvector "github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quenchlab/barkeep/internal/model"
	"github.com/quenchlab/barkeep/internal/store"
)

// MockEmbeddingService for testing
type MockEmbeddingService struct {
	mock.Mock
}

func (m *MockEmbeddingService) GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(pgvector.Vector), args.Error(1)
}

func (m *MockEmbeddingService) GenerateEmbeddingBatch(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	args := m.Called(ctx, texts)
	return args.Get(0).([]pgvector.Vector), args.Error(1)
}

func (m *MockEmbeddingService) Dimensions() int   { return 3 }
func (m *MockEmbeddingService) ModelName() string { return "mock-model" }

// fakeSearcher records the query it was given and returns canned matches.
type fakeSearcher struct {
	lastLimit     int
	lastThreshold float64
	calls         int
	matches       []store.Match
}

func (f *fakeSearcher) SearchSimilar(ctx context.Context, query pgvector.Vector, limit int, threshold float64) []store.Match {
	f.calls++
	f.lastLimit = limit
	f.lastThreshold = threshold
	return f.matches
}

func TestPreferencesPhraseTemplates(t *testing.T) {
	phrase := Preferences{
		Ingredients: []string{"gin", "tonic"},
		Occasion:    "party",
	}.Phrase()

	assert.Contains(t, phrase, "contains gin and tonic")
	assert.Contains(t, phrase, "perfect for party")
}

func TestPreferencesPhraseAllKinds(t *testing.T) {
	phrase := Preferences{
		Ingredients: []string{"vodka"},
		Styles:      []string{"sweet", "fruity"},
		Occasion:    "summer",
		Alcoholic:   "Non alcoholic",
	}.Phrase()

	assert.Equal(t, "contains vodka is sweet and fruity perfect for summer is Non alcoholic", phrase)
}

func TestRecommendEmbedsJoinedPhraseOnce(t *testing.T) {
	embedder := &MockEmbeddingService{}
	searcher := &fakeSearcher{}
	svc := NewRecommenderService(searcher, embedder, nil)

	prefs := Preferences{Ingredients: []string{"gin", "tonic"}, Occasion: "party"}
	embedder.On("GenerateEmbedding", mock.Anything, "contains gin and tonic perfect for party").
		Return(pgvector.NewVector([]float32{1, 0, 0}), nil).Once()

	svc.Recommend(context.Background(), prefs, 5, 0.3)

	embedder.AssertExpectations(t)
	assert.Equal(t, 1, searcher.calls)
	assert.Equal(t, 5, searcher.lastLimit)
	assert.Equal(t, 0.3, searcher.lastThreshold)
}

func TestRecommendNoPreferencesShortCircuits(t *testing.T) {
	embedder := &MockEmbeddingService{}
	searcher := &fakeSearcher{}
	svc := NewRecommenderService(searcher, embedder, nil)

	result := svc.Recommend(context.Background(), Preferences{}, 5, 0.3)

	assert.Nil(t, result)
	assert.Zero(t, searcher.calls)
	embedder.AssertNotCalled(t, "GenerateEmbedding", mock.Anything, mock.Anything)
}

func TestRecommendAttachesMatchPercent(t *testing.T) {
	embedder := &MockEmbeddingService{}
	searcher := &fakeSearcher{matches: []store.Match{
		{Cocktail: model.Cocktail{ID: 1, Name: "Margarita"}, Similarity: 0.823},
		{Cocktail: model.Cocktail{ID: 2, Name: "Mojito"}, Similarity: 2.0 / 3.0},
	}}
	svc := NewRecommenderService(searcher, embedder, nil)

	embedder.On("GenerateEmbedding", mock.Anything, mock.Anything).
		Return(pgvector.NewVector([]float32{1, 0, 0}), nil)

	recs := svc.Recommend(context.Background(), Preferences{Occasion: "party"}, 5, 0.3)
	require.Len(t, recs, 2)
	assert.Equal(t, 82.3, recs[0].MatchPercent)
	assert.Equal(t, 66.7, recs[1].MatchPercent)
	// raw similarity stays in [0,1]
	assert.Equal(t, 0.823, recs[0].Similarity)
}

func TestRecommendEmbeddingFailureDegradesToEmpty(t *testing.T) {
	embedder := &MockEmbeddingService{}
	searcher := &fakeSearcher{}
	svc := NewRecommenderService(searcher, embedder, nil)

	embedder.On("GenerateEmbedding", mock.Anything, mock.Anything).
		Return(pgvector.Vector{}, assert.AnError)

	recs := svc.Recommend(context.Background(), Preferences{Occasion: "party"}, 5, 0.3)

	assert.Empty(t, recs)
	assert.Zero(t, searcher.calls)
}

func TestRecommendByIngredientsTemplate(t *testing.T) {
	embedder := &MockEmbeddingService{}
	searcher := &fakeSearcher{}
	svc := NewRecommenderService(searcher, embedder, nil)

	embedder.On("GenerateEmbedding", mock.Anything, "cocktail with vodka and lime").
		Return(pgvector.NewVector([]float32{1, 0, 0}), nil).Once()

	svc.RecommendByIngredients(context.Background(), []string{"vodka", "lime"}, 3)

	embedder.AssertExpectations(t)
	assert.Equal(t, 0.3, searcher.lastThreshold)
}

func TestRecommendByStyleAndOccasionTemplates(t *testing.T) {
	embedder := &MockEmbeddingService{}
	searcher := &fakeSearcher{}
	svc := NewRecommenderService(searcher, embedder, nil)

	embedder.On("GenerateEmbedding", mock.Anything, "cocktail that is sweet and strong").
		Return(pgvector.NewVector([]float32{1, 0, 0}), nil).Once()
	svc.RecommendByStyle(context.Background(), []string{"sweet", "strong"}, 3)

	embedder.On("GenerateEmbedding", mock.Anything, "cocktail for relaxing").
		Return(pgvector.NewVector([]float32{1, 0, 0}), nil).Once()
	svc.RecommendByOccasion(context.Background(), "relaxing", 3)

	embedder.AssertExpectations(t)
}

func TestSingleKindHelpersEmptyInput(t *testing.T) {
	embedder := &MockEmbeddingService{}
	searcher := &fakeSearcher{}
	svc := NewRecommenderService(searcher, embedder, nil)

	assert.Nil(t, svc.RecommendByIngredients(context.Background(), nil, 3))
	assert.Nil(t, svc.RecommendByStyle(context.Background(), nil, 3))
	assert.Nil(t, svc.RecommendByOccasion(context.Background(), "", 3))
	assert.Zero(t, searcher.calls)
}
