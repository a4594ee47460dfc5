package store_test

import (
	"context"
	"testing"

	pgvector "github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quenchlab/barkeep/internal/model"
	"github.com/quenchlab/barkeep/internal/store"
	"github.com/quenchlab/barkeep/internal/testhelpers"
)

// basisVector returns a 384-dim unit vector along the given axis.
func basisVector(axis int) *pgvector.Vector {
	values := make([]float32, model.EmbeddingDim)
	values[axis] = 1
	v := pgvector.NewVector(values)
	return &v
}

func TestCatalogStorePostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	db := testhelpers.SetupTestDatabase(t)
	s := store.NewCatalogStore(db)
	ctx := context.Background()

	require.NoError(t, s.ReplaceAll(ctx, []model.Cocktail{
		{Name: "Margarita", Ingredients: "Tequila, Lime juice", Category: "Ordinary Drink", Alcoholic: "Alcoholic", Embedding: basisVector(0)},
		{Name: "Mojito", Ingredients: "White rum, Lime, Mint", Category: "Cocktail", Alcoholic: "Alcoholic", Embedding: basisVector(1)},
		{Name: "Virgin Mojito", Ingredients: "Lime, Mint, Soda", Category: "Cocktail", Alcoholic: "Non alcoholic", Embedding: basisVector(1)},
	}))

	t.Run("similarity search via pgvector", func(t *testing.T) {
		matches := s.SearchSimilar(ctx, *basisVector(1), 10, 0.3)
		require.Len(t, matches, 2)
		assert.Equal(t, "Mojito", matches[0].Name)
		assert.Equal(t, "Virgin Mojito", matches[1].Name)
		for _, m := range matches {
			assert.Greater(t, m.Similarity, 0.3)
			assert.LessOrEqual(t, m.Similarity, 1.0)
		}
	})

	t.Run("replace-all is idempotent", func(t *testing.T) {
		require.NoError(t, s.ReplaceAll(ctx, []model.Cocktail{
			{Name: "Negroni", Ingredients: "Gin, Campari, Vermouth", Embedding: basisVector(2)},
		}))
		count, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("name lookup", func(t *testing.T) {
		found := s.FindByName(ctx, "negroni")
		require.Len(t, found, 1)
		assert.Equal(t, []string{"Gin", "Campari", "Vermouth"}, found[0].IngredientList())
	})

	t.Run("random sample", func(t *testing.T) {
		assert.Len(t, s.Random(ctx, 5), 1)
	})
}
