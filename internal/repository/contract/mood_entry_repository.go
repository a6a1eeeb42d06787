package contract

import (
	"context"

	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/repository/specification"
)

type MoodEntryRepository interface {
	Create(ctx context.Context, entry *entity.MoodEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error)
}
