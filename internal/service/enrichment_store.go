package service

import (
	"context"
	"time"

	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/repository/contract"
	"ai-journal-be/internal/repository/specification"
	"ai-journal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// EnrichmentStore is everything the enrichment pipeline reads from or writes
// to the database.
type EnrichmentStore interface {
	GetRecentNotes(ctx context.Context, userId uuid.UUID, days int) ([]*entity.Note, error)
	GetNotesByIds(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) ([]*entity.Note, error)
	GetRecentEmbeddings(ctx context.Context, userId uuid.UUID, days, perDay int) ([]*entity.NoteEmbedding, error)
	NearestByVector(ctx context.Context, userId uuid.UUID, vector []float32, k int, excludeNoteId uuid.UUID) ([]contract.NoteDistance, error)
	UpsertEmbedding(ctx context.Context, embedding *entity.NoteEmbedding) error
	InsertAiMetric(ctx context.Context, metric *entity.AiMetric) error
	InsertSummary(ctx context.Context, summary *entity.NoteSummary) error
	InsertMoodEntry(ctx context.Context, entry *entity.MoodEntry) error
	GetUserProfile(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error)
}

type enrichmentStore struct {
	uowFactory          unitofwork.RepositoryFactory
	vectorSearchEnabled bool
}

func NewEnrichmentStore(uowFactory unitofwork.RepositoryFactory, vectorSearchEnabled bool) EnrichmentStore {
	return &enrichmentStore{
		uowFactory:          uowFactory,
		vectorSearchEnabled: vectorSearchEnabled,
	}
}

func since(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -days)
}

func (s *enrichmentStore) GetRecentNotes(ctx context.Context, userId uuid.UUID, days int) ([]*entity.Note, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NoteRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.CreatedSince{Since: since(days)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (s *enrichmentStore) GetNotesByIds(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) ([]*entity.Note, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NoteRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.ByIDs{IDs: ids},
	)
}

// GetRecentEmbeddings returns at most days*perDay rows of live notes, newest first.
func (s *enrichmentStore) GetRecentEmbeddings(ctx context.Context, userId uuid.UUID, days, perDay int) ([]*entity.NoteEmbedding, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NoteEmbeddingRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OfLiveNote{},
		specification.CreatedSince{Since: since(days)},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: days * perDay},
	)
}

func (s *enrichmentStore) NearestByVector(ctx context.Context, userId uuid.UUID, vector []float32, k int, excludeNoteId uuid.UUID) ([]contract.NoteDistance, error) {
	if !s.vectorSearchEnabled {
		return nil, contract.ErrVectorSearchUnavailable
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NoteEmbeddingRepository().NearestByVector(ctx, userId, vector, k, excludeNoteId)
}

func (s *enrichmentStore) UpsertEmbedding(ctx context.Context, embedding *entity.NoteEmbedding) error {
	return s.uowFactory.NewUnitOfWork(ctx).NoteEmbeddingRepository().Upsert(ctx, embedding)
}

func (s *enrichmentStore) InsertAiMetric(ctx context.Context, metric *entity.AiMetric) error {
	return s.uowFactory.NewUnitOfWork(ctx).AiMetricRepository().Create(ctx, metric)
}

func (s *enrichmentStore) InsertSummary(ctx context.Context, summary *entity.NoteSummary) error {
	return s.uowFactory.NewUnitOfWork(ctx).NoteSummaryRepository().Create(ctx, summary)
}

func (s *enrichmentStore) InsertMoodEntry(ctx context.Context, entry *entity.MoodEntry) error {
	return s.uowFactory.NewUnitOfWork(ctx).MoodEntryRepository().Create(ctx, entry)
}

func (s *enrichmentStore) GetUserProfile(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error) {
	return s.uowFactory.NewUnitOfWork(ctx).UserProfileRepository().FindByUserId(ctx, userId)
}
