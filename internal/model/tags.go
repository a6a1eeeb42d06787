package model

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Tags is stored as text[] on postgres. Other dialects keep the same array
// literal ("{a,b}") in a text column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	return pq.StringArray(t).Value()
}

func (t *Tags) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*t = Tags(arr)
	return nil
}

// GormDataType lets gorm parse the field as a scalar column; without it a
// []string is taken for a relation.
func (Tags) GormDataType() string {
	return "text"
}

func (Tags) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
