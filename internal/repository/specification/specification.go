package specification

import "gorm.io/gorm"

// Specification narrows a query. Repositories accept any number of them and
// apply them in order, so ordering and paging specs should come last.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// Apply folds specs over db.
func Apply(db *gorm.DB, specs ...Specification) *gorm.DB {
	for _, spec := range specs {
		if spec == nil {
			continue
		}
		db = spec.Apply(db)
	}
	return db
}
