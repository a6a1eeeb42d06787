package service

import (
	"context"
	"fmt"
	"testing"

	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMetric(t *testing.T, uowFactory unitofwork.RepositoryFactory, owner uuid.UUID, polarity string, tags ...string) {
	t.Helper()
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)
	note := &entity.Note{UserId: &owner, Content: "entry", EntryDate: "2025-07-01"}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))
	require.NoError(t, uow.AiMetricRepository().Create(ctx, &entity.AiMetric{
		NoteId:            note.Id,
		UserId:            &owner,
		SentimentPolarity: polarity,
		Tags:              tags,
	}))
}

func TestTopicService_Topics(t *testing.T) {
	_, uowFactory := setupTestDB(t)
	ctx := context.Background()
	owner := uuid.New()

	seedMetric(t, uowFactory, owner, "positive", "work", "family")
	seedMetric(t, uowFactory, owner, "positive", "work")
	seedMetric(t, uowFactory, owner, "negative", "Work ", "sleep")
	seedMetric(t, uowFactory, owner, "")
	seedMetric(t, uowFactory, uuid.New(), "negative", "secret")

	res, err := NewTopicService(uowFactory).Topics(ctx, owner, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, res.Range)

	require.Len(t, res.Topics, 3)
	assert.Equal(t, "work", res.Topics[0].Topic)
	assert.Equal(t, 3, res.Topics[0].Count)
	assert.InDelta(t, 0.6, res.Topics[0].Pct, 1e-9)
	assert.Equal(t, "family", res.Topics[1].Topic)
	assert.Equal(t, "sleep", res.Topics[2].Topic)

	require.Len(t, res.Sentiment, 3)
	assert.Equal(t, "positive", res.Sentiment[0].Label)
	assert.InDelta(t, 0.5, res.Sentiment[0].Pct, 1e-9)
	labels := []string{res.Sentiment[1].Label, res.Sentiment[2].Label}
	assert.ElementsMatch(t, []string{"negative", "unknown"}, labels)
}

func TestTopicService_TopTwentyFive(t *testing.T) {
	_, uowFactory := setupTestDB(t)
	ctx := context.Background()
	owner := uuid.New()

	tags := make([]string, 30)
	for i := range tags {
		tags[i] = fmt.Sprintf("tag-%02d", i)
	}
	seedMetric(t, uowFactory, owner, "neutral", tags...)

	res, err := NewTopicService(uowFactory).Topics(ctx, owner, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, res.Range)
	assert.Len(t, res.Topics, 25)
	assert.Equal(t, "tag-00", res.Topics[0].Topic)
}

func TestTopicService_Empty(t *testing.T) {
	_, uowFactory := setupTestDB(t)

	res, err := NewTopicService(uowFactory).Topics(context.Background(), uuid.New(), 500)
	require.NoError(t, err)
	assert.Equal(t, 365, res.Range)
	assert.Empty(t, res.Topics)
	assert.Empty(t, res.Sentiment)
}
