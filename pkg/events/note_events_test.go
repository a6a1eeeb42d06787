package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNoteEnrichedPayload(t *testing.T) {
	noteId, userId := uuid.New(), uuid.New()
	mood := 7
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	e := NoteEnriched{
		NoteId:            noteId,
		UserId:            userId,
		AiMoodScore:       &mood,
		SentimentPolarity: "positive",
		Tags:              []string{"work"},
		OccurredAt:        at,
	}

	var _ Event = e
	assert.Equal(t, TypeNoteEnriched, e.EventType())
	assert.Equal(t, at, e.Timestamp())

	p := e.Payload()
	assert.Equal(t, noteId.String(), p["note_id"])
	assert.Equal(t, userId.String(), p["user_id"])
	assert.Equal(t, 7, p["ai_mood_score"])
	assert.NotContains(t, p, "ai_productivity_score")
	assert.Equal(t, "2024-05-01T10:00:00Z", p["occurred_at"])
}

func TestOwnerOf(t *testing.T) {
	userId := uuid.New()

	id, ok := OwnerOf(NoteEnriched{NoteId: uuid.New(), UserId: userId})
	assert.True(t, ok)
	assert.Equal(t, userId, id)

	rebuilt := BaseEvent{Type: TypeNoteEnriched, Data: map[string]interface{}{"user_id": userId.String()}}
	id, ok = OwnerOf(rebuilt)
	assert.True(t, ok)
	assert.Equal(t, userId, id)

	_, ok = OwnerOf(BaseEvent{Type: TypeNoteEnriched, Data: map[string]interface{}{"user_id": 42}})
	assert.False(t, ok)

	_, ok = OwnerOf(BaseEvent{Type: TypeNoteEnriched, Data: map[string]interface{}{"user_id": "not-a-uuid"}})
	assert.False(t, ok)
}

func TestBaseEventAccessors(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	e := BaseEvent{Type: TypeNoteEnriched, Data: map[string]interface{}{"note_id": "n1"}, OccurredAt: at}

	var _ Event = e
	assert.Equal(t, TypeNoteEnriched, e.EventType())
	assert.Equal(t, "n1", e.Payload()["note_id"])
	assert.Equal(t, at, e.Timestamp())
}
