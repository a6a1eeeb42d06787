package service

import (
	"context"
	"math"
	"sort"
	"time"

	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/repository/specification"
	"ai-journal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	defaultTrendRange = 7
	maxRange          = 365
)

type IMoodService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMoodRequest) (*dto.MoodResponse, error)
	// Trends returns per-day averages for the last rangeDays days, oldest first.
	// Days without any mood or metric are omitted.
	Trends(ctx context.Context, userId uuid.UUID, rangeDays int) (*dto.MoodTrendsResponse, error)
}

type moodService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMoodService(uowFactory unitofwork.RepositoryFactory) IMoodService {
	return &moodService{
		uowFactory: uowFactory,
	}
}

func toMoodResponse(m *entity.MoodEntry) *dto.MoodResponse {
	return &dto.MoodResponse{
		Id:                m.Id,
		Date:              m.Date,
		MoodScore:         m.MoodScore,
		ProductivityScore: m.ProductivityScore,
		Source:            m.Source,
		CreatedAt:         m.CreatedAt,
	}
}

// clampRange keeps a day range inside 1..365, using def for non-positive input.
func clampRange(days, def int) int {
	if days <= 0 {
		return def
	}
	if days > maxRange {
		return maxRange
	}
	return days
}

func (c *moodService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMoodRequest) (*dto.MoodResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.MoodEntry{
		UserId:            &userId,
		Date:              req.Date,
		MoodScore:         req.MoodScore,
		ProductivityScore: req.ProductivityScore,
		Source:            entity.MoodSourceUser,
	}
	if err := uow.MoodEntryRepository().Create(ctx, entry); err != nil {
		return nil, err
	}
	return toMoodResponse(entry), nil
}

type dayAverage struct {
	moodSum, prodSum     int
	moodCount, prodCount int
}

func (d *dayAverage) add(mood, productivity *int) {
	if mood != nil {
		d.moodSum += *mood
		d.moodCount++
	}
	if productivity != nil {
		d.prodSum += *productivity
		d.prodCount++
	}
}

func (d *dayAverage) mood() *float64 {
	return average(d.moodSum, d.moodCount)
}

func (d *dayAverage) productivity() *float64 {
	return average(d.prodSum, d.prodCount)
}

func average(sum, count int) *float64 {
	if count == 0 {
		return nil
	}
	v := math.Round(float64(sum)/float64(count)*100) / 100
	return &v
}

func (c *moodService) Trends(ctx context.Context, userId uuid.UUID, rangeDays int) (*dto.MoodTrendsResponse, error) {
	rangeDays = clampRange(rangeDays, defaultTrendRange)

	now := time.Now().UTC()
	to := now.Format(dateLayout)
	fromTime := now.AddDate(0, 0, -(rangeDays - 1))
	from := fromTime.Format(dateLayout)

	uow := c.uowFactory.NewUnitOfWork(ctx)

	moods, err := uow.MoodEntryRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.DateBetween{From: from, To: to},
	)
	if err != nil {
		return nil, err
	}

	startOfRange := time.Date(fromTime.Year(), fromTime.Month(), fromTime.Day(), 0, 0, 0, 0, time.UTC)
	metrics, err := uow.AiMetricRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.CreatedSince{Since: startOfRange},
	)
	if err != nil {
		return nil, err
	}

	user := map[string]*dayAverage{}
	ai := map[string]*dayAverage{}

	for _, m := range moods {
		day, ok := user[m.Date]
		if !ok {
			day = &dayAverage{}
			user[m.Date] = day
		}
		mood, prod := m.MoodScore, m.ProductivityScore
		day.add(&mood, &prod)
	}

	for _, m := range metrics {
		// AI averages are bucketed by the day the metric was written
		date := m.CreatedAt.UTC().Format(dateLayout)
		day, ok := ai[date]
		if !ok {
			day = &dayAverage{}
			ai[date] = day
		}
		day.add(m.AiMoodScore, m.AiProductivityScore)
	}

	dates := make([]string, 0, len(user)+len(ai))
	seen := map[string]bool{}
	for d := range user {
		dates = append(dates, d)
		seen[d] = true
	}
	for d := range ai {
		if !seen[d] {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)

	points := make([]dto.MoodTrendPoint, 0, len(dates))
	for _, d := range dates {
		point := dto.MoodTrendPoint{Date: d}
		if u, ok := user[d]; ok {
			point.AvgMood = u.mood()
			point.AvgProductivity = u.productivity()
		}
		if a, ok := ai[d]; ok {
			point.AiAvgMood = a.mood()
			point.AiAvgProductivity = a.productivity()
		}
		points = append(points, point)
	}

	return &dto.MoodTrendsResponse{Range: rangeDays, Data: points}, nil
}
