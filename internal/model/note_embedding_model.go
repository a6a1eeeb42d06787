package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// NoteEmbedding holds one vector per note. The unique index on note_id backs
// the ON CONFLICT upsert.
type NoteEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	NoteId         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	UserId         *uuid.UUID      `gorm:"type:uuid;index"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text size
	CreatedAt      time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (NoteEmbedding) TableName() string {
	return "note_embeddings"
}

func (e *NoteEmbedding) BeforeCreate(tx *gorm.DB) error {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	return nil
}
