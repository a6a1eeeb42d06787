package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MoodEntry struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId            *uuid.UUID `gorm:"type:uuid;index"`
	Date              string     `gorm:"type:varchar(10);not null;index"`
	MoodScore         int        `gorm:"not null"`
	ProductivityScore int        `gorm:"not null"`
	Source            string     `gorm:"type:varchar(8);not null;default:'user'"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
}

func (MoodEntry) TableName() string {
	return "moods"
}

func (m *MoodEntry) BeforeCreate(tx *gorm.DB) error {
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	return nil
}
