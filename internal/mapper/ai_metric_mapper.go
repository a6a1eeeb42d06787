package mapper

import (
	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/model"
)

type AiMetricMapper struct{}

func NewAiMetricMapper() *AiMetricMapper {
	return &AiMetricMapper{}
}

func (m *AiMetricMapper) ToEntity(a *model.AiMetric) *entity.AiMetric {
	if a == nil {
		return nil
	}

	var tags []string
	if len(a.Tags) > 0 {
		tags = []string(a.Tags)
	}

	return &entity.AiMetric{
		Id:                  a.Id,
		NoteId:              a.NoteId,
		UserId:              a.UserId,
		AiMoodScore:         a.AiMoodScore,
		AiProductivityScore: a.AiProductivityScore,
		SentimentPolarity:   a.SentimentPolarity,
		SentimentEmotion:    a.SentimentEmotion,
		SentimentConfidence: a.SentimentConfidence,
		Tags:                tags,
		CreatedAt:           a.CreatedAt,
	}
}

func (m *AiMetricMapper) ToModel(a *entity.AiMetric) *model.AiMetric {
	if a == nil {
		return nil
	}

	return &model.AiMetric{
		Id:                  a.Id,
		NoteId:              a.NoteId,
		UserId:              a.UserId,
		AiMoodScore:         a.AiMoodScore,
		AiProductivityScore: a.AiProductivityScore,
		SentimentPolarity:   a.SentimentPolarity,
		SentimentEmotion:    a.SentimentEmotion,
		SentimentConfidence: a.SentimentConfidence,
		Tags:                model.Tags(a.Tags),
		CreatedAt:           a.CreatedAt,
	}
}

func (m *AiMetricMapper) ToEntities(metrics []*model.AiMetric) []*entity.AiMetric {
	entities := make([]*entity.AiMetric, len(metrics))
	for i, a := range metrics {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
