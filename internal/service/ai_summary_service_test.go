package service

import (
	"context"
	"strings"
	"testing"

	"ai-journal-be/internal/dto"
	"ai-journal-be/pkg/ai/enrich"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAiSummaryService_Summarize(t *testing.T) {
	provider := &fakeLLM{narrative: narrativeReply}
	svc := NewAiSummaryService(newTestAiClient(t, provider))

	res, err := svc.Summarize(context.Background(), &dto.AiSummaryRequest{
		Content:      "Shipped the release and celebrated with the team.",
		Mood:         intPtr(7),
		Productivity: intPtr(8),
	})
	require.NoError(t, err)
	assert.Equal(t, narrativeReply, res.Summary)
	require.NotNil(t, res.Mood)
	assert.Equal(t, 8, *res.Mood)
	assert.Equal(t, 9, *res.Productivity)
	assert.True(t, strings.Contains(provider.summaryPrompt(), "User-reported mood: 7/10"))
}

func TestAiSummaryService_NoTrailer(t *testing.T) {
	svc := NewAiSummaryService(newTestAiClient(t, &fakeLLM{narrative: "Just a calm day."}))

	res, err := svc.Summarize(context.Background(), &dto.AiSummaryRequest{Content: "Calm."})
	require.NoError(t, err)
	assert.Nil(t, res.Mood)
	assert.Nil(t, res.Productivity)
}

func TestAiSummaryService_Errors(t *testing.T) {
	_, err := NewAiSummaryService(nil).Summarize(context.Background(), &dto.AiSummaryRequest{Content: "x"})
	assert.ErrorIs(t, err, enrich.ErrNoProvider)

	svc := NewAiSummaryService(newTestAiClient(t, &fakeLLM{summaryErr: errOutage}))
	_, err = svc.Summarize(context.Background(), &dto.AiSummaryRequest{Content: "x"})
	assert.ErrorIs(t, err, errOutage)
}
