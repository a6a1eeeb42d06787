package service

import (
	"context"
	"errors"
	"time"

	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/repository/specification"
	"ai-journal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const weeklyWindowDays = 7

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

type IReportService interface {
	Daily(ctx context.Context, userId uuid.UUID, date string) (*dto.DailyReportResponse, error)
	// Weekly covers the 7 days ending at end (today when empty). Days
	// without a mood entry carry null averages.
	Weekly(ctx context.Context, userId uuid.UUID, end string) (*dto.WeeklyReportResponse, error)
}

type reportService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReportService(uowFactory unitofwork.RepositoryFactory) IReportService {
	return &reportService{
		uowFactory: uowFactory,
	}
}

func (c *reportService) Daily(ctx context.Context, userId uuid.UUID, date string) (*dto.DailyReportResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	owner := specification.OwnedByUser{UserID: userId}

	notes, err := uow.NoteRepository().FindAll(ctx,
		owner,
		specification.ByEntryDate{Date: date},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(notes))
	for i, n := range notes {
		ids[i] = n.Id
	}
	summaries, err := uow.NoteSummaryRepository().FindLatestByNoteIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	mood, err := uow.MoodEntryRepository().FindOne(ctx,
		owner,
		specification.ByMoodDate{Date: date},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DailyReportItem, len(notes))
	for i, n := range notes {
		items[i] = dto.DailyReportItem{Note: toNoteResponse(n)}
		if s, ok := summaries[n.Id]; ok {
			summary := s.AiSummary
			items[i].AiSummary = &summary
		}
	}

	res := &dto.DailyReportResponse{Date: date, Items: items}
	if mood != nil {
		res.Mood = toMoodResponse(mood)
	}
	return res, nil
}

func (c *reportService) Weekly(ctx context.Context, userId uuid.UUID, end string) (*dto.WeeklyReportResponse, error) {
	endDate := time.Now().UTC()
	if end != "" {
		parsed, err := time.Parse(dateLayout, end)
		if err != nil {
			return nil, ErrInvalidDate
		}
		endDate = parsed
	}
	end = endDate.Format(dateLayout)
	start := endDate.AddDate(0, 0, -(weeklyWindowDays - 1))

	uow := c.uowFactory.NewUnitOfWork(ctx)
	moods, err := uow.MoodEntryRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.DateBetween{From: start.Format(dateLayout), To: end},
	)
	if err != nil {
		return nil, err
	}

	days := map[string]*dayAverage{}
	for _, m := range moods {
		day, ok := days[m.Date]
		if !ok {
			day = &dayAverage{}
			days[m.Date] = day
		}
		mood, prod := m.MoodScore, m.ProductivityScore
		day.add(&mood, &prod)
	}

	trends := make([]dto.WeeklyTrendRow, 0, weeklyWindowDays)
	for i := 0; i < weeklyWindowDays; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		row := dto.WeeklyTrendRow{Date: date}
		if d, ok := days[date]; ok {
			row.AvgMood = d.mood()
			row.AvgProductivity = d.productivity()
		}
		trends = append(trends, row)
	}

	return &dto.WeeklyReportResponse{End: end, WindowDays: weeklyWindowDays, Trends: trends}, nil
}
