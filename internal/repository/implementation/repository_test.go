package implementation

import (
	"context"
	"testing"
	"time"

	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/model"
	"ai-journal-be/internal/repository/contract"
	"ai-journal-be/internal/repository/specification"
	"ai-journal-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteMemory()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.AllModels()...))
	return db
}

func createNote(t *testing.T, db *gorm.DB, userId *uuid.UUID, content, date string) *entity.Note {
	t.Helper()
	note := &entity.Note{UserId: userId, Content: content, EntryDate: date}
	require.NoError(t, NewNoteRepository(db).Create(context.Background(), note))
	return note
}

func TestNoteRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewNoteRepository(db)

	owner := uuid.New()
	n1 := createNote(t, db, &owner, "first", "2024-05-01")
	createNote(t, db, &owner, "second", "2024-05-02")
	createNote(t, db, nil, "anonymous", "2024-05-01")

	assert.NotEqual(t, uuid.Nil, n1.Id)
	assert.False(t, n1.CreatedAt.IsZero())

	found, err := repo.FindOne(ctx, specification.ByID{ID: n1.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "first", found.Content)
	assert.Equal(t, owner, *found.UserId)

	notes, err := repo.FindAll(ctx, specification.OwnedByUser{UserID: owner}, specification.ByEntryDate{Date: "2024-05-01"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, n1.Id, notes[0].Id)

	anon, err := repo.FindAll(ctx, specification.Anonymous{})
	require.NoError(t, err)
	require.Len(t, anon, 1)
	assert.Nil(t, anon[0].UserId)

	count, err := repo.Count(ctx, specification.OwnedByUser{UserID: owner})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	missing, err := repo.FindOne(ctx, specification.ByID{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNoteEmbeddingUpsertKeepsOneRowPerNote(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewNoteEmbeddingRepository(db)

	owner := uuid.New()
	note := createNote(t, db, &owner, "walk", "2024-05-01")

	require.NoError(t, repo.Upsert(ctx, &entity.NoteEmbedding{
		NoteId: note.Id, UserId: &owner, Document: "v1", EmbeddingValue: []float32{1, 0, 0},
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.NoteEmbedding{
		NoteId: note.Id, UserId: &owner, Document: "v2", EmbeddingValue: []float32{0, 1, 0},
	}))

	all, err := repo.FindAll(ctx, specification.ByNoteID{NoteID: note.Id})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "v2", all[0].Document)
	assert.Equal(t, []float32{0, 1, 0}, all[0].EmbeddingValue)
}

func TestNearestByVectorFailsWithoutPgvector(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNoteEmbeddingRepository(db)

	_, err := repo.NearestByVector(context.Background(), uuid.New(), []float32{1, 0, 0}, 5, uuid.New())
	assert.Error(t, err)
}

func TestAiMetricRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewAiMetricRepository(db)

	owner := uuid.New()
	note := createNote(t, db, &owner, "run", "2024-05-01")
	mood, productivity := 6, 8

	older := &entity.AiMetric{
		NoteId:            note.Id,
		UserId:            &owner,
		SentimentPolarity: "neutral",
		SentimentEmotion:  "calm",
		CreatedAt:         time.Now().UTC().Add(-time.Hour),
	}
	newer := &entity.AiMetric{
		NoteId:              note.Id,
		UserId:              &owner,
		AiMoodScore:         &mood,
		AiProductivityScore: &productivity,
		SentimentPolarity:   "positive",
		SentimentEmotion:    "joyful",
		SentimentConfidence: 0.7,
		Tags:                []string{"running", "health"},
		CreatedAt:           time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	latest, err := repo.FindLatestByNoteId(ctx, note.Id)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, newer.Id, latest.Id)
	assert.Equal(t, []string{"running", "health"}, latest.Tags)
	assert.Equal(t, 6, *latest.AiMoodScore)

	all, err := repo.FindAll(ctx, specification.ByNoteID{NoteID: note.Id}, specification.OrderBy{Field: "created_at"})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Nil(t, all[0].Tags)
	assert.Nil(t, all[0].AiMoodScore)

	none, err := repo.FindLatestByNoteId(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestNoteSummaryLatestPerNote(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewNoteSummaryRepository(db)

	a := createNote(t, db, nil, "a", "2024-05-01")
	b := createNote(t, db, nil, "b", "2024-05-01")

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &entity.NoteSummary{NoteId: a.Id, AiSummary: "old", CreatedAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Create(ctx, &entity.NoteSummary{NoteId: a.Id, AiSummary: "new", CreatedAt: now}))

	got, err := repo.FindLatestByNoteIds(ctx, []uuid.UUID{a.Id, b.Id})
	require.NoError(t, err)
	require.Contains(t, got, a.Id)
	assert.Equal(t, "new", got[a.Id].AiSummary)
	assert.NotContains(t, got, b.Id)

	empty, err := repo.FindLatestByNoteIds(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMoodEntryRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewMoodEntryRepository(db)

	owner := uuid.New()
	require.NoError(t, repo.Create(ctx, &entity.MoodEntry{UserId: &owner, Date: "2024-05-01", MoodScore: 7, ProductivityScore: 6}))
	require.NoError(t, repo.Create(ctx, &entity.MoodEntry{UserId: &owner, Date: "2024-05-03", MoodScore: 4, ProductivityScore: 5, Source: entity.MoodSourceAI}))

	entries, err := repo.FindAll(ctx, specification.OwnedByUser{UserID: owner}, specification.DateBetween{From: "2024-05-01", To: "2024-05-02"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.MoodSourceUser, entries[0].Source)

	ai, err := repo.FindOne(ctx, specification.BySource{Source: entity.MoodSourceAI})
	require.NoError(t, err)
	require.NotNil(t, ai)
	assert.Equal(t, "2024-05-03", ai.Date)
}

func TestUserProfileUpsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserProfileRepository(db)
	userId := uuid.New()

	none, err := repo.FindByUserId(ctx, userId)
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repo.Upsert(ctx, &entity.UserProfile{UserId: userId, Preferences: map[string]interface{}{"tone": "warm"}}))
	require.NoError(t, repo.Upsert(ctx, &entity.UserProfile{UserId: userId, Preferences: map[string]interface{}{"tone": "direct", "goals": []interface{}{"sleep"}}}))

	got, err := repo.FindByUserId(ctx, userId)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "direct", got.Preferences["tone"])
	assert.Equal(t, []interface{}{"sleep"}, got.Preferences["goals"])

	var rows int64
	require.NoError(t, db.Model(&model.UserProfile{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestNotificationRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db)

	owner := uuid.New()
	n := &model.Notification{UserID: owner, TypeCode: "NOTE_ENRICHED", Title: "Insights ready", Message: "Your entry was analysed"}
	require.NoError(t, repo.CreateNotification(ctx, n))
	require.NoError(t, repo.CreateNotification(ctx, &model.Notification{UserID: owner, TypeCode: "NOTE_ENRICHED", Title: "t", Message: "m"}))

	list, total, err := repo.GetNotificationsByUserID(ctx, owner, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	assert.ErrorIs(t, repo.MarkAsRead(ctx, uuid.New(), n.ID), contract.ErrNotificationNotFound)
	require.NoError(t, repo.MarkAsRead(ctx, owner, n.ID))

	unread, err := repo.GetUnreadCount(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	require.NoError(t, repo.MarkAllAsRead(ctx, owner))
	unread, err = repo.GetUnreadCount(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}
