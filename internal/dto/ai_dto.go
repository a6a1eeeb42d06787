package dto

type AiSummaryRequest struct {
	Content      string `json:"content" validate:"required"`
	Mood         *int   `json:"mood" validate:"omitempty,min=1,max=10"`
	Productivity *int   `json:"productivity" validate:"omitempty,min=1,max=10"`
}

type AiSummaryResponse struct {
	Summary      string `json:"summary"`
	Mood         *int   `json:"mood"`
	Productivity *int   `json:"productivity"`
}
