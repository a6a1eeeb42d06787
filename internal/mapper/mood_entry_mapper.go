package mapper

import (
	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/model"
)

type MoodEntryMapper struct{}

func NewMoodEntryMapper() *MoodEntryMapper {
	return &MoodEntryMapper{}
}

func (m *MoodEntryMapper) ToEntity(e *model.MoodEntry) *entity.MoodEntry {
	if e == nil {
		return nil
	}
	return &entity.MoodEntry{
		Id:                e.Id,
		UserId:            e.UserId,
		Date:              e.Date,
		MoodScore:         e.MoodScore,
		ProductivityScore: e.ProductivityScore,
		Source:            e.Source,
		CreatedAt:         e.CreatedAt,
	}
}

func (m *MoodEntryMapper) ToModel(e *entity.MoodEntry) *model.MoodEntry {
	if e == nil {
		return nil
	}
	source := e.Source
	if source == "" {
		source = entity.MoodSourceUser
	}
	return &model.MoodEntry{
		Id:                e.Id,
		UserId:            e.UserId,
		Date:              e.Date,
		MoodScore:         e.MoodScore,
		ProductivityScore: e.ProductivityScore,
		Source:            source,
		CreatedAt:         e.CreatedAt,
	}
}

func (m *MoodEntryMapper) ToEntities(entries []*model.MoodEntry) []*entity.MoodEntry {
	entities := make([]*entity.MoodEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
