package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Content           string `json:"content" validate:"required"`
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
	MoodScore         *int   `json:"mood_score" validate:"omitempty,min=1,max=10"`
	ProductivityScore *int   `json:"productivity_score" validate:"omitempty,min=1,max=10"`
}

type NoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	UserId    *uuid.UUID `json:"user_id"`
	Content   string     `json:"content"`
	Date      string     `json:"date"`
	CreatedAt time.Time  `json:"created_at"`
}

type CreateNoteResponse struct {
	Note NoteResponse `json:"note"`
}

type NoteInsightResponse struct {
	NoteId              uuid.UUID `json:"note_id"`
	AiMoodScore         *int      `json:"ai_mood_score"`
	AiProductivityScore *int      `json:"ai_productivity_score"`
	SentimentPolarity   string    `json:"sentiment_polarity"`
	SentimentEmotion    string    `json:"sentiment_emotion"`
	SentimentConfidence float64   `json:"sentiment_confidence"`
	Tags                []string  `json:"tags"`
	CreatedAt           time.Time `json:"created_at"`
}

// EnrichmentJob is the message carried from note creation to the enrichment
// consumer.
type EnrichmentJob struct {
	NoteId                   uuid.UUID `json:"note_id"`
	UserId                   uuid.UUID `json:"user_id"`
	Content                  string    `json:"content"`
	SelfReportedMood         *int      `json:"self_reported_mood,omitempty"`
	SelfReportedProductivity *int      `json:"self_reported_productivity,omitempty"`
	Date                     string    `json:"date"`
}
