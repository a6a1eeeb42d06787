package implementation

import (
	"context"
	"errors"

	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/mapper"
	"ai-journal-be/internal/model"
	"ai-journal-be/internal/repository/contract"
	"ai-journal-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MoodEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MoodEntryMapper
}

func NewMoodEntryRepository(db *gorm.DB) contract.MoodEntryRepository {
	return &MoodEntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewMoodEntryMapper(),
	}
}

func (r *MoodEntryRepositoryImpl) Create(ctx context.Context, entry *entity.MoodEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *MoodEntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodEntry, error) {
	var m model.MoodEntry
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MoodEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error) {
	var models []*model.MoodEntry
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
