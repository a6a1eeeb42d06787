package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	UserId    *uuid.UUID // nil for anonymous notes
	Content   string
	EntryDate string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

type NoteEmbedding struct {
	Id             uuid.UUID
	NoteId         uuid.UUID
	UserId         *uuid.UUID
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

type NoteSummary struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	UserId    *uuid.UUID
	AiSummary string
	CreatedAt time.Time
}
