package store

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/quenchlab/barkeep/internal/model"
)

// EnsureSchema creates the pgvector extension, the cocktails table and the
// cosine similarity index. On non-Postgres dialects (SQLite in tests) it
// falls back to plain auto-migration.
func EnsureSchema(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		log.Printf("Using GORM auto-migration for %s", db.Dialector.Name())
		return db.AutoMigrate(&model.Cocktail{})
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}
	if err := db.AutoMigrate(&model.Cocktail{}); err != nil {
		return fmt.Errorf("failed to migrate cocktails table: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS cocktails_embedding_idx
		ON cocktails USING ivfflat (embedding vector_cosine_ops)
		WITH (lists = 100)
	`).Error; err != nil {
		return fmt.Errorf("failed to create embedding index: %w", err)
	}
	return nil
}
