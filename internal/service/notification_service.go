package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/model"
	"ai-journal-be/internal/pkg/logger"
	"ai-journal-be/internal/repository/contract"
	"ai-journal-be/pkg/events"
	pktNats "ai-journal-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery pushes real-time updates. Implemented by the websocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

type NotificationService struct {
	repo       contract.NotificationRepository
	publisher  EventPublisher
	subscriber EventSubscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

// NewNotificationService wires the inbox. With both publisher and subscriber
// set, enrichment results travel through NATS; otherwise they are delivered
// in-process.
func NewNotificationService(
	repo contract.NotificationRepository,
	pub EventPublisher,
	sub EventSubscriber,
	delivery NotificationDelivery,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		repo:       repo,
		publisher:  pub,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start attaches the durable NOTE_ENRICHED consumer. It is a no-op without NATS.
func (s *NotificationService) Start(ctx context.Context) error {
	if s.subscriber == nil {
		return nil
	}

	subject := pktNats.Subject(events.TypeNoteEnriched)
	if err := s.subscriber.Subscribe(ctx, subject, "journal-notification-worker", s.handleEvent); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	s.logger.Info("NotificationService", "Listening for enrichment events", map[string]interface{}{"subject": subject})
	return nil
}

func (s *NotificationService) NotifyNoteEnriched(ctx context.Context, event events.NoteEnriched) {
	if s.publisher != nil && s.subscriber != nil {
		err := s.publisher.Publish(ctx, event)
		if err == nil {
			return
		}
		s.logger.Warn("NotificationService", "Publish failed, delivering directly", map[string]interface{}{
			"note_id": event.NoteId.String(),
			"error":   err.Error(),
		})
	}

	if err := s.handleEvent(ctx, event); err != nil {
		s.logger.Error("NotificationService", "Failed to deliver enrichment notification", map[string]interface{}{
			"note_id": event.NoteId.String(),
			"error":   err.Error(),
		})
	}
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	if event.EventType() != events.TypeNoteEnriched {
		s.logger.Debug("NotificationService", "Ignoring event", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	userID, ok := events.OwnerOf(event)
	if !ok {
		// redelivery will not fix a bad payload
		s.logger.Warn("NotificationService", "Event without a valid user_id", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	notif := buildNotification(userID, event)
	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}
	return nil
}

func buildNotification(userID uuid.UUID, event events.Event) model.Notification {
	payload := event.Payload()

	message := "Your journal entry has been analysed."
	mood, hasMood := payload["ai_mood_score"]
	productivity, hasProductivity := payload["ai_productivity_score"]
	if hasMood && hasProductivity {
		message = fmt.Sprintf("Your journal entry has been analysed: mood %v/10, productivity %v/10.", mood, productivity)
	}

	entityType, _ := payload["entity_type"].(string)
	var entityID *uuid.UUID
	if eidStr, ok := payload["entity_id"].(string); ok {
		if eid, err := uuid.Parse(eidStr); err == nil {
			entityID = &eid
		}
	}

	metaMap := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		metaMap[k] = v
	}
	if entityType != "" && entityID != nil {
		metaMap["action_url"] = fmt.Sprintf("/%ss/%s/insights", entityType, entityID.String())
	}
	metaJSON, _ := json.Marshal(metaMap)

	return model.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		TypeCode:   event.EventType(),
		Title:      "Journal insights ready",
		Message:    message,
		Metadata:   datatypes.JSON(metaJSON),
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now().UTC(),
	}
}

func toNotificationResponse(n model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		Id:         n.ID,
		TypeCode:   n.TypeCode,
		EntityType: n.EntityType,
		EntityId:   n.EntityID,
		Title:      n.Title,
		Message:    n.Message,
		Metadata:   n.Metadata,
		IsRead:     n.IsRead,
		ReadAt:     n.ReadAt,
		CreatedAt:  n.CreatedAt,
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) (*dto.NotificationListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, total, err := s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NotificationResponse, len(rows))
	for i, n := range rows {
		items[i] = toNotificationResponse(n)
	}
	return &dto.NotificationListResponse{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, error) {
	count, err := s.repo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, userID, id)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
