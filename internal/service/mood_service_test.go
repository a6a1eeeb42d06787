package service

import (
	"context"
	"testing"
	"time"

	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodService_Create(t *testing.T) {
	_, uowFactory := setupTestDB(t)
	svc := NewMoodService(uowFactory)
	owner := uuid.New()

	res, err := svc.Create(context.Background(), owner, &dto.CreateMoodRequest{
		Date:              "2025-04-01",
		MoodScore:         6,
		ProductivityScore: 3,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.Equal(t, entity.MoodSourceUser, res.Source)
	assert.Equal(t, 6, res.MoodScore)
}

func TestMoodService_Trends(t *testing.T) {
	_, uowFactory := setupTestDB(t)
	svc := NewMoodService(uowFactory)
	ctx := context.Background()
	owner := uuid.New()

	today := time.Now().UTC().Format(dateLayout)
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(dateLayout)
	longAgo := time.Now().UTC().AddDate(0, 0, -30).Format(dateLayout)

	for _, m := range []struct {
		date       string
		mood, prod int
	}{
		{yesterday, 4, 6},
		{today, 6, 8},
		{today, 7, 9},
		{longAgo, 1, 1},
	} {
		_, err := svc.Create(ctx, owner, &dto.CreateMoodRequest{Date: m.date, MoodScore: m.mood, ProductivityScore: m.prod})
		require.NoError(t, err)
	}
	// another user's entry never leaks in
	_, err := svc.Create(ctx, uuid.New(), &dto.CreateMoodRequest{Date: today, MoodScore: 10, ProductivityScore: 10})
	require.NoError(t, err)

	uow := uowFactory.NewUnitOfWork(ctx)
	note := &entity.Note{UserId: &owner, Content: "x", EntryDate: today}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))
	require.NoError(t, uow.AiMetricRepository().Create(ctx, &entity.AiMetric{
		NoteId:              note.Id,
		UserId:              &owner,
		AiMoodScore:         intPtr(5),
		AiProductivityScore: nil,
	}))

	res, err := svc.Trends(ctx, owner, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Range)
	require.Len(t, res.Data, 2)

	assert.Equal(t, yesterday, res.Data[0].Date)
	assert.Equal(t, 4.0, *res.Data[0].AvgMood)
	assert.Nil(t, res.Data[0].AiAvgMood)

	assert.Equal(t, today, res.Data[1].Date)
	assert.Equal(t, 6.5, *res.Data[1].AvgMood)
	assert.Equal(t, 8.5, *res.Data[1].AvgProductivity)
	assert.Equal(t, 5.0, *res.Data[1].AiAvgMood)
	assert.Nil(t, res.Data[1].AiAvgProductivity)
}

func TestMoodService_TrendsRangeIsClamped(t *testing.T) {
	_, uowFactory := setupTestDB(t)
	svc := NewMoodService(uowFactory)

	res, err := svc.Trends(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Range)
	assert.Empty(t, res.Data)

	res, err = svc.Trends(context.Background(), uuid.New(), 10000)
	require.NoError(t, err)
	assert.Equal(t, 365, res.Range)
}
