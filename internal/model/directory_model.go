package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null;index"`
	Description    string    `gorm:"type:text"`
	Category       string    `gorm:"type:varchar(50);index"`
	Specifications string    `gorm:"type:text"`
	Price          float64   `gorm:"type:numeric(12,2)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

type Technician struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Specialty  string    `gorm:"type:varchar(100);index"`
	Contact    string    `gorm:"type:varchar(255)"`
	Experience int       `gorm:"default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Technician) TableName() string {
	return "technicians"
}

type Salesman struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Specialty string    `gorm:"type:varchar(100);index"`
	Contact   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Salesman) TableName() string {
	return "salesmen"
}

type Employee struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Position   string    `gorm:"type:varchar(100);index"`
	Department string    `gorm:"type:varchar(100);index"`
	Contact    string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
