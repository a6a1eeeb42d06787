package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/repository/specification"
	"ai-journal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	defaultTopicRange = 30
	maxTopics         = 25
	unknownSentiment  = "unknown"
)

type ITopicService interface {
	Topics(ctx context.Context, userId uuid.UUID, rangeDays int) (*dto.TopicsResponse, error)
}

type topicService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTopicService(uowFactory unitofwork.RepositoryFactory) ITopicService {
	return &topicService{
		uowFactory: uowFactory,
	}
}

type labelCount struct {
	label string
	count int
}

// rank orders by count descending, then label, so ties are stable.
func rank(counts map[string]int) []labelCount {
	out := make([]labelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, labelCount{label: label, count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].label < out[j].label
	})
	return out
}

func sumCounts(rows []labelCount) int {
	total := 0
	for _, r := range rows {
		total += r.count
	}
	if total == 0 {
		return 1
	}
	return total
}

func (c *topicService) Topics(ctx context.Context, userId uuid.UUID, rangeDays int) (*dto.TopicsResponse, error) {
	rangeDays = clampRange(rangeDays, defaultTopicRange)

	now := time.Now().UTC()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -rangeDays)

	uow := c.uowFactory.NewUnitOfWork(ctx)
	metrics, err := uow.AiMetricRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.CreatedSince{Since: since},
	)
	if err != nil {
		return nil, err
	}

	tagCounts := map[string]int{}
	sentimentCounts := map[string]int{}
	for _, m := range metrics {
		for _, tag := range m.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			tagCounts[tag]++
		}

		label := m.SentimentPolarity
		if label == "" {
			label = unknownSentiment
		}
		sentimentCounts[label]++
	}

	topicRows := rank(tagCounts)
	if len(topicRows) > maxTopics {
		topicRows = topicRows[:maxTopics]
	}
	topicTotal := float64(sumCounts(topicRows))
	topics := make([]dto.TopicCount, len(topicRows))
	for i, r := range topicRows {
		topics[i] = dto.TopicCount{Topic: r.label, Count: r.count, Pct: float64(r.count) / topicTotal}
	}

	sentimentRows := rank(sentimentCounts)
	sentimentTotal := float64(sumCounts(sentimentRows))
	sentiment := make([]dto.SentimentCount, len(sentimentRows))
	for i, r := range sentimentRows {
		sentiment[i] = dto.SentimentCount{Label: r.label, Count: r.count, Pct: float64(r.count) / sentimentTotal}
	}

	return &dto.TopicsResponse{Range: rangeDays, Topics: topics, Sentiment: sentiment}, nil
}
