package specification

import "gorm.io/gorm"

// SearchText matches a query against name and description, case insensitive.
type SearchText struct {
	Query string
}

func (s SearchText) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type BySpecialty struct {
	Specialty string
}

func (s BySpecialty) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("specialty ILIKE ?", "%"+s.Specialty+"%")
}

type ByDepartment struct {
	Department string
}

func (s ByDepartment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("department ILIKE ?", "%"+s.Department+"%")
}

type ByPosition struct {
	Position string
}

func (s ByPosition) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("position ILIKE ?", "%"+s.Position+"%")
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByUserEmail struct {
	Email string
}

func (s ByUserEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_email = ?", s.Email)
}
