package implementation

import (
	"context"
	"errors"

	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/mapper"
	"ai-journal-be/internal/model"
	"ai-journal-be/internal/repository/contract"
	"ai-journal-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteEmbeddingMapper
}

func NewNoteEmbeddingRepository(db *gorm.DB) contract.NoteEmbeddingRepository {
	return &NoteEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteEmbeddingMapper(),
	}
}

// Upsert relies on the unique index on note_id, so concurrent runs for the
// same note never leave two rows or a window with none.
func (r *NoteEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.NoteEmbedding) error {
	m := r.mapper.ToModel(embedding)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "note_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "document", "embedding_value", "updated_at"}),
		}).
		Create(m).Error
}

func (r *NoteEmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteEmbedding, error) {
	var m model.NoteEmbedding
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteEmbedding, error) {
	var models []*model.NoteEmbedding
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// NearestByVector needs the pgvector extension. On any other store the query
// fails and the caller falls back to in-memory ranking.
func (r *NoteEmbeddingRepositoryImpl) NearestByVector(ctx context.Context, userId uuid.UUID, vector []float32, k int, excludeNoteId uuid.UUID) ([]contract.NoteDistance, error) {
	if k <= 0 {
		k = 5
	}

	var rows []struct {
		NoteId   uuid.UUID
		Distance float64
	}

	// Soft-deleted notes must not surface as context
	err := r.db.WithContext(ctx).
		Table("note_embeddings").
		Select("note_embeddings.note_id, note_embeddings.embedding_value <=> ? AS distance", pgvector.NewVector(vector)).
		Joins("JOIN notes ON notes.id = note_embeddings.note_id").
		Where("note_embeddings.user_id = ?", userId).
		Where("note_embeddings.note_id <> ?", excludeNoteId).
		Where("notes.deleted_at IS NULL").
		Order("distance ASC").
		Limit(k).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]contract.NoteDistance, len(rows))
	for i, row := range rows {
		result[i] = contract.NoteDistance{NoteId: row.NoteId, Distance: row.Distance}
	}
	return result, nil
}
