package specification

import "gorm.io/gorm"

// Specification composes a query predicate onto a gorm chain. Repositories
// apply a slice of these before executing.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
