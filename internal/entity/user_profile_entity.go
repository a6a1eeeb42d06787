package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	UserId      uuid.UUID
	Preferences map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
