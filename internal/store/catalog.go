package store

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/quenchlab/barkeep/internal/model"
)

// nameLookupLimit caps name substring lookups.
const nameLookupLimit = 5

// Match is a catalog record returned by similarity search. Similarity is
// always the raw cosine similarity in [0,1]; scaling for display happens
// above the store boundary.
type Match struct {
	model.Cocktail
	Similarity float64 `json:"similarity"`
}

// CatalogStore persists cocktails and answers catalog queries.
//
// Read methods (SearchSimilar, FindByName, FindByCategory, Random) never
// return errors: any connectivity or query failure is logged and collapsed
// into an empty result set, so callers see failures and legitimate
// emptiness the same way. Write methods surface their errors.
type CatalogStore struct {
	db *gorm.DB
}

// NewCatalogStore creates a new CatalogStore instance.
func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ReplaceAll atomically clears the catalog and inserts the new batch.
// Readers concurrent with the call observe either the old or the new
// catalog, never a mix; any insert failure rolls the whole batch back.
func (s *CatalogStore) ReplaceAll(ctx context.Context, cocktails []model.Cocktail) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM cocktails").Error; err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}
		if len(cocktails) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(cocktails, 100).Error; err != nil {
			return fmt.Errorf("failed to insert catalog batch: %w", err)
		}
		return nil
	})
}

// Count returns the number of stored cocktails.
func (s *CatalogStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Cocktail{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cocktails: %w", err)
	}
	return count, nil
}

// SearchSimilar returns up to limit records whose cosine similarity to the
// query vector exceeds threshold, ordered by similarity descending with id
// as the deterministic tie-break. Records without an embedding are never
// candidates.
func (s *CatalogStore) SearchSimilar(ctx context.Context, query pgvector.Vector, limit int, threshold float64) []Match {
	if limit <= 0 {
		return []Match{}
	}

	if s.db.Dialector.Name() != "postgres" {
		return s.searchSimilarScan(ctx, query, limit, threshold)
	}

	var matches []Match
	err := s.db.WithContext(ctx).Raw(`
		SELECT id, name, ingredients, recipe, glass, category, iba, alcoholic,
		       1 - (embedding <=> ?) AS similarity
		FROM cocktails
		WHERE embedding IS NOT NULL
		  AND 1 - (embedding <=> ?) > ?
		ORDER BY similarity DESC, id
		LIMIT ?`, query, query, threshold, limit).Scan(&matches).Error
	if err != nil {
		log.Printf("Error searching for cocktails: %v", err)
		return []Match{}
	}
	return matches
}

// searchSimilarScan is the non-Postgres path: scan every embedded record
// and rank in memory. Same contract, used by SQLite-backed tests.
func (s *CatalogStore) searchSimilarScan(ctx context.Context, query pgvector.Vector, limit int, threshold float64) []Match {
	var cocktails []model.Cocktail
	err := s.db.WithContext(ctx).Where("embedding IS NOT NULL").Find(&cocktails).Error
	if err != nil {
		log.Printf("Error searching for cocktails: %v", err)
		return []Match{}
	}

	matches := make([]Match, 0, len(cocktails))
	for _, c := range cocktails {
		if c.Embedding == nil {
			continue
		}
		similarity := cosineSimilarity(query.Slice(), c.Embedding.Slice())
		if similarity > threshold {
			matches = append(matches, Match{Cocktail: c, Similarity: similarity})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].ID < matches[j].ID
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// FindByName returns up to 5 cocktails whose name contains the given
// string, case-insensitively.
func (s *CatalogStore) FindByName(ctx context.Context, name string) []model.Cocktail {
	var cocktails []model.Cocktail
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Limit(nameLookupLimit).
		Find(&cocktails).Error
	if err != nil {
		log.Printf("Error fetching cocktail by name: %v", err)
		return []model.Cocktail{}
	}
	return cocktails
}

// FindByCategory returns up to limit cocktails whose category contains the
// given string, case-insensitively, ordered by name.
func (s *CatalogStore) FindByCategory(ctx context.Context, category string, limit int) []model.Cocktail {
	if limit <= 0 {
		return []model.Cocktail{}
	}
	var cocktails []model.Cocktail
	err := s.db.WithContext(ctx).
		Where("LOWER(category) LIKE LOWER(?)", "%"+category+"%").
		Order("name").
		Limit(limit).
		Find(&cocktails).Error
	if err != nil {
		log.Printf("Error getting cocktails by category: %v", err)
		return []model.Cocktail{}
	}
	return cocktails
}

// Random returns up to limit cocktails sampled uniformly without
// replacement.
func (s *CatalogStore) Random(ctx context.Context, limit int) []model.Cocktail {
	if limit <= 0 {
		return []model.Cocktail{}
	}
	var cocktails []model.Cocktail
	err := s.db.WithContext(ctx).
		Order("RANDOM()").
		Limit(limit).
		Find(&cocktails).Error
	if err != nil {
		log.Printf("Error getting random cocktails: %v", err)
		return []model.Cocktail{}
	}
	return cocktails
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
