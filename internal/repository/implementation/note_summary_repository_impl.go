package implementation

import (
	"context"

	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/mapper"
	"ai-journal-be/internal/model"
	"ai-journal-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteSummaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteSummaryMapper
}

func NewNoteSummaryRepository(db *gorm.DB) contract.NoteSummaryRepository {
	return &NoteSummaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteSummaryMapper(),
	}
}

func (r *NoteSummaryRepositoryImpl) Create(ctx context.Context, summary *entity.NoteSummary) error {
	m := r.mapper.ToModel(summary)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*summary = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteSummaryRepositoryImpl) FindLatestByNoteIds(ctx context.Context, noteIds []uuid.UUID) (map[uuid.UUID]*entity.NoteSummary, error) {
	result := make(map[uuid.UUID]*entity.NoteSummary, len(noteIds))
	if len(noteIds) == 0 {
		return result, nil
	}

	var models []*model.NoteSummary
	err := r.db.WithContext(ctx).
		Where("note_id IN ?", noteIds).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	// Newest first, so the first hit per note wins
	for _, m := range models {
		if _, ok := result[m.NoteId]; !ok {
			result[m.NoteId] = r.mapper.ToEntity(m)
		}
	}
	return result, nil
}
