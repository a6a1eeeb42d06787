package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMoodRequest struct {
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
	MoodScore         int    `json:"mood_score" validate:"required,min=1,max=10"`
	ProductivityScore int    `json:"productivity_score" validate:"required,min=1,max=10"`
}

type MoodResponse struct {
	Id                uuid.UUID `json:"id"`
	Date              string    `json:"date"`
	MoodScore         int       `json:"mood_score"`
	ProductivityScore int       `json:"productivity_score"`
	Source            string    `json:"source"`
	CreatedAt         time.Time `json:"created_at"`
}

// MoodTrendPoint holds one day's averages. AI averages are nil when no note
// of that day has been enriched.
type MoodTrendPoint struct {
	Date              string   `json:"date"`
	AvgMood           *float64 `json:"avg_mood"`
	AvgProductivity   *float64 `json:"avg_productivity"`
	AiAvgMood         *float64 `json:"ai_avg_mood"`
	AiAvgProductivity *float64 `json:"ai_avg_productivity"`
}

type MoodTrendsResponse struct {
	Range int              `json:"range"`
	Data  []MoodTrendPoint `json:"data"`
}
