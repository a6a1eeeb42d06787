package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationResponse struct {
	Id         uuid.UUID      `json:"id"`
	TypeCode   string         `json:"type_code"`
	EntityType string         `json:"entity_type,omitempty"`
	EntityId   *uuid.UUID     `json:"entity_id,omitempty"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Metadata   datatypes.JSON `json:"metadata,omitempty"`
	IsRead     bool           `json:"is_read"`
	ReadAt     *time.Time     `json:"read_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Total  int64                  `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
