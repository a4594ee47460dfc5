package model

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// EmbeddingDim is the dimensionality of the reference sentence-embedding
// model (all-MiniLM-L6-v2).
const EmbeddingDim = 384

// Cocktail is one catalog record. Ingredients are stored comma-joined for
// compatibility with the flat text column; IngredientList reconstructs them.
// Records whose Embedding is null are invisible to similarity search but
// still reachable through name/category/random lookups.
type Cocktail struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Ingredients string           `gorm:"type:text;not null" json:"ingredients"`
	Recipe      string           `gorm:"type:text" json:"recipe"`
	Glass       string           `gorm:"size:100" json:"glass"`
	Category    string           `gorm:"size:100" json:"category"`
	IBA         string           `gorm:"size:100;column:iba" json:"iba"`
	Alcoholic   string           `gorm:"size:50" json:"alcoholic"`
	Embedding   *pgvector.Vector `gorm:"type:vector(384)" json:"-"`
}

// TableName overrides gorm's pluralization to match the catalog schema.
func (Cocktail) TableName() string {
	return "cocktails"
}

// IngredientList splits the stored comma-joined ingredients back into the
// ordered list they were ingested from.
func (c *Cocktail) IngredientList() []string {
	if c.Ingredients == "" {
		return nil
	}
	parts := strings.Split(c.Ingredients, ", ")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
