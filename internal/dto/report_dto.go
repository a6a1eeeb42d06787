package dto

type DailyReportItem struct {
	Note      NoteResponse `json:"note"`
	AiSummary *string      `json:"ai_summary"`
}

type DailyReportResponse struct {
	Date  string            `json:"date"`
	Mood  *MoodResponse     `json:"mood"`
	Items []DailyReportItem `json:"items"`
}

type WeeklyTrendRow struct {
	Date            string   `json:"date"`
	AvgMood         *float64 `json:"avg_mood"`
	AvgProductivity *float64 `json:"avg_productivity"`
}

type WeeklyReportResponse struct {
	End        string           `json:"end"`
	WindowDays int              `json:"window_days"`
	Trends     []WeeklyTrendRow `json:"trends"`
}
