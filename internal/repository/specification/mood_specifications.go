package specification

import "gorm.io/gorm"

// DateBetween filters the moods.date column, inclusive on both ends.
type DateBetween struct {
	From string
	To   string
}

func (s DateBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date BETWEEN ? AND ?", s.From, s.To)
}

type ByMoodDate struct {
	Date string
}

func (s ByMoodDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", s.Date)
}

type BySource struct {
	Source string
}

func (s BySource) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source = ?", s.Source)
}
