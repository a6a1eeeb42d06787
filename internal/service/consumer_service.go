package service

import (
	"context"
	"encoding/json"

	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber        message.Subscriber
	topicName         string
	enrichmentService IEnrichmentService
	logger            logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	enrichmentService IEnrichmentService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:        subscriber,
		topicName:         topicName,
		enrichmentService: enrichmentService,
		logger:            log,
	}
}

// Consume subscribes to the enrichment topic and returns immediately. Each
// job runs in its own goroutine; there is no ordering between jobs.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var job dto.EnrichmentJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		cs.logger.Error("CONSUMER", "Failed to decode enrichment job", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // a malformed payload never gets better
		return
	}

	if job.NoteId == uuid.Nil || job.UserId == uuid.Nil {
		cs.logger.Warn("CONSUMER", "Dropping enrichment job without note or owner", map[string]interface{}{
			"message_id": msg.UUID,
		})
		msg.Ack()
		return
	}

	// The pipeline handles its own failures, so the message is done here.
	msg.Ack()

	cs.logger.Info("CONSUMER", "Enrichment job received", map[string]interface{}{
		"note_id": job.NoteId.String(),
	})
	go cs.enrichmentService.Enrich(ctx, job)
}
