package service

import (
	"context"
	"fmt"

	"metro-chatbot-be/internal/dto"
	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/repository/specification"
	"metro-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDirectoryService interface {
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SearchProducts(ctx context.Context, req *dto.SearchDirectoryRequest) ([]*dto.ProductResponse, error)

	CreateTechnician(ctx context.Context, req *dto.CreateTechnicianRequest) (*dto.TechnicianResponse, error)
	GetTechnician(ctx context.Context, id uuid.UUID) (*dto.TechnicianResponse, error)
	UpdateTechnician(ctx context.Context, req *dto.UpdateTechnicianRequest) (*dto.TechnicianResponse, error)
	DeleteTechnician(ctx context.Context, id uuid.UUID) error
	ListTechnicians(ctx context.Context, specialty string) ([]*dto.TechnicianResponse, error)

	CreateSalesman(ctx context.Context, req *dto.CreateSalesmanRequest) (*dto.SalesmanResponse, error)
	GetSalesman(ctx context.Context, id uuid.UUID) (*dto.SalesmanResponse, error)
	UpdateSalesman(ctx context.Context, req *dto.UpdateSalesmanRequest) (*dto.SalesmanResponse, error)
	DeleteSalesman(ctx context.Context, id uuid.UUID) error
	ListSalesmen(ctx context.Context, specialty string) ([]*dto.SalesmanResponse, error)

	CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
	ListEmployees(ctx context.Context, department, position string) ([]*dto.EmployeeResponse, error)
}

type directoryService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDirectoryService(uowFactory unitofwork.RepositoryFactory) IDirectoryService {
	return &directoryService{
		uowFactory: uowFactory,
	}
}

func (s *directoryService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product := &entity.Product{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Specifications: req.Specifications,
		Price:          req.Price,
	}
	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (s *directoryService) GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}
	return toProductResponse(product), nil
}

func (s *directoryService) UpdateProduct(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProductRepository()

	product, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Category = req.Category
	product.Specifications = req.Specifications
	product.Price = req.Price
	if err := repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (s *directoryService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().Delete(ctx, id)
}

func (s *directoryService) SearchProducts(ctx context.Context, req *dto.SearchDirectoryRequest) ([]*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if req.Query != "" {
		specs = append(specs, specification.SearchText{Query: req.Query})
	}
	if req.Category != "" {
		specs = append(specs, specification.ByCategory{Category: req.Category})
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	specs = append(specs, specification.Pagination{Limit: limit})

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses, nil
}

func (s *directoryService) CreateTechnician(ctx context.Context, req *dto.CreateTechnicianRequest) (*dto.TechnicianResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	technician := &entity.Technician{
		Name:       req.Name,
		Specialty:  req.Specialty,
		Contact:    req.Contact,
		Experience: req.Experience,
	}
	if err := uow.TechnicianRepository().Create(ctx, technician); err != nil {
		return nil, err
	}
	return toTechnicianResponse(technician), nil
}

func (s *directoryService) GetTechnician(ctx context.Context, id uuid.UUID) (*dto.TechnicianResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	technician, err := uow.TechnicianRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if technician == nil {
		return nil, fmt.Errorf("technician not found")
	}
	return toTechnicianResponse(technician), nil
}

func (s *directoryService) UpdateTechnician(ctx context.Context, req *dto.UpdateTechnicianRequest) (*dto.TechnicianResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TechnicianRepository()

	technician, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if technician == nil {
		return nil, fmt.Errorf("technician not found")
	}

	technician.Name = req.Name
	technician.Specialty = req.Specialty
	technician.Contact = req.Contact
	technician.Experience = req.Experience
	if err := repo.Update(ctx, technician); err != nil {
		return nil, err
	}
	return toTechnicianResponse(technician), nil
}

func (s *directoryService) DeleteTechnician(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.TechnicianRepository().Delete(ctx, id)
}

func (s *directoryService) ListTechnicians(ctx context.Context, specialty string) ([]*dto.TechnicianResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if specialty != "" {
		specs = append(specs, specification.BySpecialty{Specialty: specialty})
	}

	technicians, err := uow.TechnicianRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.TechnicianResponse, len(technicians))
	for i, t := range technicians {
		responses[i] = toTechnicianResponse(t)
	}
	return responses, nil
}

func (s *directoryService) CreateSalesman(ctx context.Context, req *dto.CreateSalesmanRequest) (*dto.SalesmanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	salesman := &entity.Salesman{
		Name:      req.Name,
		Specialty: req.Specialty,
		Contact:   req.Contact,
	}
	if err := uow.SalesmanRepository().Create(ctx, salesman); err != nil {
		return nil, err
	}
	return toSalesmanResponse(salesman), nil
}

func (s *directoryService) GetSalesman(ctx context.Context, id uuid.UUID) (*dto.SalesmanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	salesman, err := uow.SalesmanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if salesman == nil {
		return nil, fmt.Errorf("salesman not found")
	}
	return toSalesmanResponse(salesman), nil
}

func (s *directoryService) UpdateSalesman(ctx context.Context, req *dto.UpdateSalesmanRequest) (*dto.SalesmanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SalesmanRepository()

	salesman, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if salesman == nil {
		return nil, fmt.Errorf("salesman not found")
	}

	salesman.Name = req.Name
	salesman.Specialty = req.Specialty
	salesman.Contact = req.Contact
	if err := repo.Update(ctx, salesman); err != nil {
		return nil, err
	}
	return toSalesmanResponse(salesman), nil
}

func (s *directoryService) DeleteSalesman(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SalesmanRepository().Delete(ctx, id)
}

func (s *directoryService) ListSalesmen(ctx context.Context, specialty string) ([]*dto.SalesmanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if specialty != "" {
		specs = append(specs, specification.BySpecialty{Specialty: specialty})
	}

	salesmen, err := uow.SalesmanRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.SalesmanResponse, len(salesmen))
	for i, sm := range salesmen {
		responses[i] = toSalesmanResponse(sm)
	}
	return responses, nil
}

func (s *directoryService) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee := &entity.Employee{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Contact:    req.Contact,
	}
	if err := uow.EmployeeRepository().Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

func (s *directoryService) GetEmployee(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("employee not found")
	}
	return toEmployeeResponse(employee), nil
}

func (s *directoryService) UpdateEmployee(ctx context.Context, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.EmployeeRepository()

	employee, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("employee not found")
	}

	employee.Name = req.Name
	employee.Position = req.Position
	employee.Department = req.Department
	employee.Contact = req.Contact
	if err := repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

func (s *directoryService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EmployeeRepository().Delete(ctx, id)
}

func (s *directoryService) ListEmployees(ctx context.Context, department, position string) ([]*dto.EmployeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if department != "" {
		specs = append(specs, specification.ByDepartment{Department: department})
	}
	if position != "" {
		specs = append(specs, specification.ByPosition{Position: position})
	}

	employees, err := uow.EmployeeRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.EmployeeResponse, len(employees))
	for i, e := range employees {
		responses[i] = toEmployeeResponse(e)
	}
	return responses, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Specifications: p.Specifications,
		Price:          p.Price,
		CreatedAt:      p.CreatedAt,
	}
}

func toTechnicianResponse(t *entity.Technician) *dto.TechnicianResponse {
	return &dto.TechnicianResponse{
		Id:         t.Id,
		Name:       t.Name,
		Specialty:  t.Specialty,
		Contact:    t.Contact,
		Experience: t.Experience,
	}
}

func toSalesmanResponse(s *entity.Salesman) *dto.SalesmanResponse {
	return &dto.SalesmanResponse{
		Id:        s.Id,
		Name:      s.Name,
		Specialty: s.Specialty,
		Contact:   s.Contact,
	}
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		Id:         e.Id,
		Name:       e.Name,
		Position:   e.Position,
		Department: e.Department,
		Contact:    e.Contact,
	}
}
