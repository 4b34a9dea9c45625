package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description"`
	Category       string  `json:"category" validate:"required,oneof=solar generator inverter electrical"`
	Specifications string  `json:"specifications"`
	Price          float64 `json:"price" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Id             uuid.UUID
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description"`
	Category       string  `json:"category" validate:"required,oneof=solar generator inverter electrical"`
	Specifications string  `json:"specifications"`
	Price          float64 `json:"price" validate:"gte=0"`
}

type ProductResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Specifications string    `json:"specifications"`
	Price          float64   `json:"price"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateTechnicianRequest struct {
	Name       string `json:"name" validate:"required"`
	Specialty  string `json:"specialty" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
	Experience int    `json:"experience" validate:"gte=0"`
}

type UpdateTechnicianRequest struct {
	Id         uuid.UUID
	Name       string `json:"name" validate:"required"`
	Specialty  string `json:"specialty" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
	Experience int    `json:"experience" validate:"gte=0"`
}

type TechnicianResponse struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Specialty  string    `json:"specialty"`
	Contact    string    `json:"contact"`
	Experience int       `json:"experience"`
}

type CreateSalesmanRequest struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
	Contact   string `json:"contact" validate:"required"`
}

type UpdateSalesmanRequest struct {
	Id        uuid.UUID
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
	Contact   string `json:"contact" validate:"required"`
}

type SalesmanResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Contact   string    `json:"contact"`
}

type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"required"`
	Position   string `json:"position" validate:"required"`
	Department string `json:"department" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
}

type UpdateEmployeeRequest struct {
	Id         uuid.UUID
	Name       string `json:"name" validate:"required"`
	Position   string `json:"position" validate:"required"`
	Department string `json:"department" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
}

type EmployeeResponse struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Contact    string    `json:"contact"`
}

type SearchDirectoryRequest struct {
	Query    string `json:"query" validate:"required"`
	Category string `json:"category"`
	Limit    int    `json:"limit" validate:"gte=0,lte=50"`
}
