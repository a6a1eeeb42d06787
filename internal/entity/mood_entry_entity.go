package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MoodSourceUser = "user"
	MoodSourceAI   = "ai"
)

type MoodEntry struct {
	Id                uuid.UUID
	UserId            *uuid.UUID
	Date              string
	MoodScore         int
	ProductivityScore int
	Source            string
	CreatedAt         time.Time
}
