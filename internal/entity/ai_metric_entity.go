package entity

import (
	"time"

	"github.com/google/uuid"
)

type AiMetric struct {
	Id                  uuid.UUID
	NoteId              uuid.UUID
	UserId              *uuid.UUID
	AiMoodScore         *int
	AiProductivityScore *int
	SentimentPolarity   string
	SentimentEmotion    string
	SentimentConfidence float64
	Tags                []string
	CreatedAt           time.Time
}
