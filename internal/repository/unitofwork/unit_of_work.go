package unitofwork

import (
	"context"

	"ai-journal-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	NoteEmbeddingRepository() contract.NoteEmbeddingRepository
	NoteSummaryRepository() contract.NoteSummaryRepository
	AiMetricRepository() contract.AiMetricRepository
	MoodEntryRepository() contract.MoodEntryRepository
	UserProfileRepository() contract.UserProfileRepository
	NotificationRepository() contract.NotificationRepository
}
