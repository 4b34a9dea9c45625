package contract

import (
	"context"

	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type TechnicianRepository interface {
	Create(ctx context.Context, technician *entity.Technician) error
	Update(ctx context.Context, technician *entity.Technician) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Technician, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Technician, error)
}

type SalesmanRepository interface {
	Create(ctx context.Context, salesman *entity.Salesman) error
	Update(ctx context.Context, salesman *entity.Salesman) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Salesman, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Salesman, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error)
}
