package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id             uuid.UUID
	Name           string
	Description    string
	Category       string
	Specifications string
	Price          float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Technician struct {
	Id         uuid.UUID
	Name       string
	Specialty  string
	Contact    string
	Experience int
	CreatedAt  time.Time
}

type Salesman struct {
	Id        uuid.UUID
	Name      string
	Specialty string
	Contact   string
	CreatedAt time.Time
}

type Employee struct {
	Id         uuid.UUID
	Name       string
	Position   string
	Department string
	Contact    string
	CreatedAt  time.Time
}
