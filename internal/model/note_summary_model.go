package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteSummary struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	NoteId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserId    *uuid.UUID `gorm:"type:uuid;index"`
	AiSummary string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
}

func (NoteSummary) TableName() string {
	return "summaries"
}

func (s *NoteSummary) BeforeCreate(tx *gorm.DB) error {
	if s.Id == uuid.Nil {
		s.Id = uuid.New()
	}
	return nil
}
