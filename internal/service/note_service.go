package service

import (
	"context"
	"encoding/json"

	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/pkg/logger"
	"ai-journal-be/internal/repository/specification"
	"ai-journal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	// Create stores the note and, for a known owner, queues its enrichment.
	// userId is nil for anonymous notes.
	Create(ctx context.Context, userId *uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	ListByDate(ctx context.Context, userId *uuid.UUID, date string) ([]dto.NoteResponse, error)
	// Insights returns nil when the note is not the caller's or has no metric yet.
	Insights(ctx context.Context, userId *uuid.UUID, noteId uuid.UUID) (*dto.NoteInsightResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func toNoteResponse(note *entity.Note) dto.NoteResponse {
	return dto.NoteResponse{
		Id:        note.Id,
		UserId:    note.UserId,
		Content:   note.Content,
		Date:      note.EntryDate,
		CreatedAt: note.CreatedAt,
	}
}

func ownerSpec(userId *uuid.UUID) specification.Specification {
	if userId == nil {
		return specification.Anonymous{}
	}
	return specification.OwnedByUser{UserID: *userId}
}

func (c *noteService) Create(ctx context.Context, userId *uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	note := &entity.Note{
		UserId:    userId,
		Content:   req.Content,
		EntryDate: req.Date,
	}

	err := c.uowFactory.WithinTransaction(ctx, func(uow unitofwork.UnitOfWork) error {
		if err := uow.NoteRepository().Create(ctx, note); err != nil {
			return err
		}

		if req.MoodScore == nil || req.ProductivityScore == nil {
			return nil
		}
		return uow.MoodEntryRepository().Create(ctx, &entity.MoodEntry{
			UserId:            userId,
			Date:              req.Date,
			MoodScore:         *req.MoodScore,
			ProductivityScore: *req.ProductivityScore,
			Source:            entity.MoodSourceUser,
		})
	})
	if err != nil {
		return nil, err
	}

	// Anonymous notes are never enriched
	if userId != nil {
		c.queueEnrichment(ctx, note, req)
	}

	return &dto.CreateNoteResponse{Note: toNoteResponse(note)}, nil
}

// queueEnrichment only logs failures; the note is already stored.
func (c *noteService) queueEnrichment(ctx context.Context, note *entity.Note, req *dto.CreateNoteRequest) {
	job := dto.EnrichmentJob{
		NoteId:                   note.Id,
		UserId:                   *note.UserId,
		Content:                  note.Content,
		SelfReportedMood:         req.MoodScore,
		SelfReportedProductivity: req.ProductivityScore,
		Date:                     note.EntryDate,
	}

	payload, err := json.Marshal(job)
	if err != nil {
		c.logger.Error("NOTE", "Failed to encode enrichment job", map[string]interface{}{
			"note_id": note.Id.String(),
			"error":   err.Error(),
		})
		return
	}

	if err := c.publisherService.Publish(ctx, payload); err != nil {
		c.logger.Error("NOTE", "Failed to queue enrichment job", map[string]interface{}{
			"note_id": note.Id.String(),
			"error":   err.Error(),
		})
	}
}

func (c *noteService) ListByDate(ctx context.Context, userId *uuid.UUID, date string) ([]dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		ownerSpec(userId),
		specification.ByEntryDate{Date: date},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = toNoteResponse(n)
	}
	return res, nil
}

func (c *noteService) Insights(ctx context.Context, userId *uuid.UUID, noteId uuid.UUID) (*dto.NoteInsightResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		ownerSpec(userId),
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	metric, err := uow.AiMetricRepository().FindLatestByNoteId(ctx, note.Id)
	if err != nil {
		return nil, err
	}
	if metric == nil {
		return nil, nil
	}

	return &dto.NoteInsightResponse{
		NoteId:              metric.NoteId,
		AiMoodScore:         metric.AiMoodScore,
		AiProductivityScore: metric.AiProductivityScore,
		SentimentPolarity:   metric.SentimentPolarity,
		SentimentEmotion:    metric.SentimentEmotion,
		SentimentConfidence: metric.SentimentConfidence,
		Tags:                metric.Tags,
		CreatedAt:           metric.CreatedAt,
	}, nil
}
