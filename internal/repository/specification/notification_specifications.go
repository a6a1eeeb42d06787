package specification

import "gorm.io/gorm"

// Unread keeps notifications the owner has not acknowledged.
type Unread struct{}

func (s Unread) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}
