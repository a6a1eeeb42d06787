package contract

import (
	"context"

	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AiMetricRepository interface {
	Create(ctx context.Context, metric *entity.AiMetric) error
	FindLatestByNoteId(ctx context.Context, noteId uuid.UUID) (*entity.AiMetric, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiMetric, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
