package ingest

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/quenchlab/barkeep/internal/model"
	"github.com/quenchlab/barkeep/internal/service"
)

// embedBatchSize is how many combined-text blobs go to the model per call.
const embedBatchSize = 64

// CatalogWriter is the slice of the store the pipeline needs.
type CatalogWriter interface {
	ReplaceAll(ctx context.Context, cocktails []model.Cocktail) error
}

// Ingestor runs the batch pipeline: CSV → normalized records → embeddings →
// replace-all write. A failed run leaves the prior catalog intact.
type Ingestor struct {
	store    CatalogWriter
	embedder service.EmbeddingServiceInterface
}

// NewIngestor creates a new Ingestor instance.
func NewIngestor(store CatalogWriter, embedder service.EmbeddingServiceInterface) *Ingestor {
	return &Ingestor{
		store:    store,
		embedder: embedder,
	}
}

// Run ingests the CSV at path, fully replacing the persisted catalog.
func (in *Ingestor) Run(ctx context.Context, path string) error {
	runID := uuid.New()
	log.Printf("[ingest %s] loading %s", runID, path)

	header, rows, err := LoadCSV(path)
	if err != nil {
		return err
	}

	schema := DetectSchema(header)
	if schema.Name == "" {
		return fmt.Errorf("unrecognized column layout in %s: no name column", path)
	}
	log.Printf("[ingest %s] detected columns: %v", runID, header)

	records := NormalizeBatch(rows, schema)
	log.Printf("[ingest %s] normalized %d records (%d rows before deduplication)",
		runID, len(records), len(rows))

	cocktails, err := in.embedRecords(ctx, runID, records)
	if err != nil {
		return err
	}

	if err := in.store.ReplaceAll(ctx, cocktails); err != nil {
		return fmt.Errorf("failed to store cocktails: %w", err)
	}
	log.Printf("[ingest %s] stored %d cocktails", runID, len(cocktails))
	return nil
}

// embedRecords generates embeddings for every record's combined text and
// assembles the catalog rows.
func (in *Ingestor) embedRecords(ctx context.Context, runID uuid.UUID, records []Record) ([]model.Cocktail, error) {
	log.Printf("[ingest %s] generating embeddings for %d cocktails with model %s",
		runID, len(records), in.embedder.ModelName())

	cocktails := make([]model.Cocktail, 0, len(records))
	for start := 0; start < len(records); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		texts := make([]string, len(batch))
		for i, rec := range batch {
			texts[i] = rec.CombinedText()
		}
		vectors, err := in.embedder.GenerateEmbeddingBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("failed to embed records %d-%d: %w", start+1, end, err)
		}

		for i, rec := range batch {
			vec := vectors[i]
			cocktails = append(cocktails, model.Cocktail{
				Name:        rec.Name,
				Ingredients: rec.IngredientsJoined(),
				Recipe:      rec.Transcript(),
				Glass:       rec.Glass,
				Category:    rec.Category,
				IBA:         rec.IBA,
				Alcoholic:   rec.Alcoholic,
				Embedding:   &vec,
			})
			if len(cocktails)%100 == 0 {
				log.Printf("[ingest %s] embedded %d records...", runID, len(cocktails))
			}
		}
	}
	return cocktails, nil
}
