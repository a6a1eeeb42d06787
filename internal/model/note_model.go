package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId    *uuid.UUID     `gorm:"type:uuid;index"`
	Content   string         `gorm:"type:text;not null"`
	EntryDate string         `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Note) TableName() string {
	return "notes"
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.Id == uuid.Nil {
		n.Id = uuid.New()
	}
	return nil
}
