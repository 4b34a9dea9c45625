package mapper

import (
	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Specifications: p.Specifications,
		Price:          p.Price,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Specifications: p.Specifications,
		Price:          p.Price,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []model.Product) []entity.Product {
	entities := make([]entity.Product, 0, len(products))
	for i := range products {
		entities = append(entities, *m.ToEntity(&products[i]))
	}
	return entities
}

type TechnicianMapper struct{}

func NewTechnicianMapper() *TechnicianMapper {
	return &TechnicianMapper{}
}

func (m *TechnicianMapper) ToEntity(t *model.Technician) *entity.Technician {
	if t == nil {
		return nil
	}
	return &entity.Technician{
		Id:         t.Id,
		Name:       t.Name,
		Specialty:  t.Specialty,
		Contact:    t.Contact,
		Experience: t.Experience,
		CreatedAt:  t.CreatedAt,
	}
}

func (m *TechnicianMapper) ToModel(t *entity.Technician) *model.Technician {
	if t == nil {
		return nil
	}
	return &model.Technician{
		Id:         t.Id,
		Name:       t.Name,
		Specialty:  t.Specialty,
		Contact:    t.Contact,
		Experience: t.Experience,
		CreatedAt:  t.CreatedAt,
	}
}

func (m *TechnicianMapper) ToEntities(technicians []model.Technician) []entity.Technician {
	entities := make([]entity.Technician, 0, len(technicians))
	for i := range technicians {
		entities = append(entities, *m.ToEntity(&technicians[i]))
	}
	return entities
}

type SalesmanMapper struct{}

func NewSalesmanMapper() *SalesmanMapper {
	return &SalesmanMapper{}
}

func (m *SalesmanMapper) ToEntity(s *model.Salesman) *entity.Salesman {
	if s == nil {
		return nil
	}
	return &entity.Salesman{
		Id:        s.Id,
		Name:      s.Name,
		Specialty: s.Specialty,
		Contact:   s.Contact,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SalesmanMapper) ToModel(s *entity.Salesman) *model.Salesman {
	if s == nil {
		return nil
	}
	return &model.Salesman{
		Id:        s.Id,
		Name:      s.Name,
		Specialty: s.Specialty,
		Contact:   s.Contact,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SalesmanMapper) ToEntities(salesmen []model.Salesman) []entity.Salesman {
	entities := make([]entity.Salesman, 0, len(salesmen))
	for i := range salesmen {
		entities = append(entities, *m.ToEntity(&salesmen[i]))
	}
	return entities
}

type EmployeeMapper struct{}

func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

func (m *EmployeeMapper) ToEntity(e *model.Employee) *entity.Employee {
	if e == nil {
		return nil
	}
	return &entity.Employee{
		Id:         e.Id,
		Name:       e.Name,
		Position:   e.Position,
		Department: e.Department,
		Contact:    e.Contact,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *EmployeeMapper) ToModel(e *entity.Employee) *model.Employee {
	if e == nil {
		return nil
	}
	return &model.Employee{
		Id:         e.Id,
		Name:       e.Name,
		Position:   e.Position,
		Department: e.Department,
		Contact:    e.Contact,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *EmployeeMapper) ToEntities(employees []model.Employee) []entity.Employee {
	entities := make([]entity.Employee, 0, len(employees))
	for i := range employees {
		entities = append(entities, *m.ToEntity(&employees[i]))
	}
	return entities
}
