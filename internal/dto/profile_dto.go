package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertPersonaRequest struct {
	Preferences map[string]interface{} `json:"preferences" validate:"required"`
}

type PersonaResponse struct {
	UserId      uuid.UUID              `json:"user_id"`
	Preferences map[string]interface{} `json:"preferences"`
	UpdatedAt   *time.Time             `json:"updated_at"`
}
