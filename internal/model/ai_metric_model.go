package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AiMetric rows are append-only; readers take the latest by created_at.
type AiMetric struct {
	Id                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	NoteId              uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserId              *uuid.UUID `gorm:"type:uuid;index"`
	AiMoodScore         *int
	AiProductivityScore *int
	SentimentPolarity   string  `gorm:"type:varchar(16)"`
	SentimentEmotion    string  `gorm:"type:varchar(16)"`
	SentimentConfidence float64 `gorm:"default:0"`
	Tags                Tags
	CreatedAt           time.Time `gorm:"autoCreateTime;index"`
}

func (AiMetric) TableName() string {
	return "note_ai_metrics"
}

func (m *AiMetric) BeforeCreate(tx *gorm.DB) error {
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	return nil
}
