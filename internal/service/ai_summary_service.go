package service

import (
	"context"

	"ai-journal-be/internal/dto"
	"ai-journal-be/pkg/ai/enrich"
	"ai-journal-be/pkg/sentiment"
)

type IAiSummaryService interface {
	// Summarize runs a one-off summary without touching the store. The
	// returned scores come from the narrative trailer and may be nil.
	Summarize(ctx context.Context, req *dto.AiSummaryRequest) (*dto.AiSummaryResponse, error)
}

type aiSummaryService struct {
	aiClient *enrich.Client
}

func NewAiSummaryService(aiClient *enrich.Client) IAiSummaryService {
	return &aiSummaryService{
		aiClient: aiClient,
	}
}

func (c *aiSummaryService) Summarize(ctx context.Context, req *dto.AiSummaryRequest) (*dto.AiSummaryResponse, error) {
	if c.aiClient == nil {
		return nil, enrich.ErrNoProvider
	}

	summary, err := c.aiClient.Summarize(ctx, enrich.SummaryInput{
		Content:                  req.Content,
		Hints:                    sentiment.Analyze(req.Content),
		SelfReportedMood:         req.Mood,
		SelfReportedProductivity: req.Productivity,
	})
	if err != nil {
		return nil, err
	}

	scores := enrich.ParseScores(summary)
	return &dto.AiSummaryResponse{
		Summary:      summary,
		Mood:         scores.Mood,
		Productivity: scores.Productivity,
	}, nil
}
