package events

import (
	"time"

	"github.com/google/uuid"
)

const TypeNoteEnriched = "NOTE_ENRICHED"

// NoteEnriched is emitted once a note's AI metric has been stored.
type NoteEnriched struct {
	NoteId              uuid.UUID
	UserId              uuid.UUID
	AiMoodScore         *int
	AiProductivityScore *int
	SentimentPolarity   string
	SentimentEmotion    string
	Tags                []string
	OccurredAt          time.Time
}

func (e NoteEnriched) EventType() string {
	return TypeNoteEnriched
}

func (e NoteEnriched) Payload() map[string]interface{} {
	payload := map[string]interface{}{
		"note_id":            e.NoteId.String(),
		"user_id":            e.UserId.String(),
		"sentiment_polarity": e.SentimentPolarity,
		"sentiment_emotion":  e.SentimentEmotion,
		"tags":               e.Tags,
		"entity_type":        "note",
		"entity_id":          e.NoteId.String(),
		"occurred_at":        e.OccurredAt.UTC().Format(time.RFC3339),
	}
	if e.AiMoodScore != nil {
		payload["ai_mood_score"] = *e.AiMoodScore
	}
	if e.AiProductivityScore != nil {
		payload["ai_productivity_score"] = *e.AiProductivityScore
	}
	return payload
}

func (e NoteEnriched) Timestamp() time.Time {
	return e.OccurredAt
}
