package mapper

import (
	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/model"
)

type NoteSummaryMapper struct{}

func NewNoteSummaryMapper() *NoteSummaryMapper {
	return &NoteSummaryMapper{}
}

func (m *NoteSummaryMapper) ToEntity(s *model.NoteSummary) *entity.NoteSummary {
	if s == nil {
		return nil
	}
	return &entity.NoteSummary{
		Id:        s.Id,
		NoteId:    s.NoteId,
		UserId:    s.UserId,
		AiSummary: s.AiSummary,
		CreatedAt: s.CreatedAt,
	}
}

func (m *NoteSummaryMapper) ToModel(s *entity.NoteSummary) *model.NoteSummary {
	if s == nil {
		return nil
	}
	return &model.NoteSummary{
		Id:        s.Id,
		NoteId:    s.NoteId,
		UserId:    s.UserId,
		AiSummary: s.AiSummary,
		CreatedAt: s.CreatedAt,
	}
}
