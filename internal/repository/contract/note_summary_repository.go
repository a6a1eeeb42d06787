package contract

import (
	"context"

	"ai-journal-be/internal/entity"

	"github.com/google/uuid"
)

type NoteSummaryRepository interface {
	Create(ctx context.Context, summary *entity.NoteSummary) error
	// FindLatestByNoteIds maps each note to its newest summary. Notes without one are absent.
	FindLatestByNoteIds(ctx context.Context, noteIds []uuid.UUID) (map[uuid.UUID]*entity.NoteSummary, error)
}
