package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for models. On postgres it first
// enables pgvector and afterwards builds the cosine ivfflat index used by
// nearest-neighbour search.
func Migrate(db *gorm.DB, models ...interface{}) error {
	isPostgres := db.Dialector.Name() == DriverPostgres

	if isPostgres {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return fmt.Errorf("failed to enable pgvector: %w", err)
		}
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	if isPostgres {
		err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_note_embeddings_vector
			ON note_embeddings USING ivfflat (embedding_value vector_cosine_ops) WITH (lists = 100)`).Error
		if err != nil {
			return fmt.Errorf("failed to create vector index: %w", err)
		}
	}

	return nil
}
