package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEntryDate struct {
	Date string
}

func (s ByEntryDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entry_date = ?", s.Date)
}

// ByNoteID is used by the tables that hang off a note (metrics, summaries, embeddings).
type ByNoteID struct {
	NoteID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

type ByNoteIDs struct {
	NoteIDs []uuid.UUID
}

func (s ByNoteIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id IN ?", s.NoteIDs)
}

// Anonymous notes and moods have a NULL owner.
type Anonymous struct{}

func (s Anonymous) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id IS NULL")
}

// OfLiveNote keeps rows hanging off a note that has not been soft-deleted.
type OfLiveNote struct{}

func (s OfLiveNote) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id IN (SELECT id FROM notes WHERE deleted_at IS NULL)")
}
