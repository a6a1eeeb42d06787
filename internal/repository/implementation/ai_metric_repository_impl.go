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
	"gorm.io/gorm"
)

type AiMetricRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AiMetricMapper
}

func NewAiMetricRepository(db *gorm.DB) contract.AiMetricRepository {
	return &AiMetricRepositoryImpl{
		db:     db,
		mapper: mapper.NewAiMetricMapper(),
	}
}

func (r *AiMetricRepositoryImpl) Create(ctx context.Context, metric *entity.AiMetric) error {
	m := r.mapper.ToModel(metric)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*metric = *r.mapper.ToEntity(m)
	return nil
}

func (r *AiMetricRepositoryImpl) FindLatestByNoteId(ctx context.Context, noteId uuid.UUID) (*entity.AiMetric, error) {
	var m model.AiMetric
	err := r.db.WithContext(ctx).
		Where("note_id = ?", noteId).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AiMetricRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiMetric, error) {
	var models []*model.AiMetric
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AiMetricRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.AiMetric{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
