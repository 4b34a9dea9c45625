package service

import (
	"context"
	"strconv"
	"time"

	"metro-chatbot-be/internal/dto"
	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/repository/specification"
	"metro-chatbot-be/internal/repository/unitofwork"
	"metro-chatbot-be/pkg/dialog"
)

// DirectoryGateway adapts the repository layer to the lookup and identity
// ports the dialogue engine depends on.
type DirectoryGateway struct {
	uowFactory  unitofwork.RepositoryFactory
	userService IUserService
}

func NewDirectoryGateway(uowFactory unitofwork.RepositoryFactory, userService IUserService) *DirectoryGateway {
	return &DirectoryGateway{
		uowFactory:  uowFactory,
		userService: userService,
	}
}

func (g *DirectoryGateway) LookupProducts(ctx context.Context, query, category string, maxResults int) ([]dialog.Record, error) {
	uow := g.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if query != "" {
		specs = append(specs, specification.SearchText{Query: query})
	}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}
	if maxResults > 0 {
		specs = append(specs, specification.Pagination{Limit: maxResults})
	}

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	records := make([]dialog.Record, len(products))
	for i, p := range products {
		records[i] = productRecord(p)
	}
	return records, nil
}

func (g *DirectoryGateway) LookupTechnicians(ctx context.Context, specialty string, maxResults int) ([]dialog.Record, error) {
	uow := g.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if specialty != "" {
		specs = append(specs, specification.BySpecialty{Specialty: specialty})
	}
	if maxResults > 0 {
		specs = append(specs, specification.Pagination{Limit: maxResults})
	}

	technicians, err := uow.TechnicianRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	records := make([]dialog.Record, len(technicians))
	for i, t := range technicians {
		records[i] = dialog.Record{
			"name":       t.Name,
			"specialty":  t.Specialty,
			"contact":    t.Contact,
			"experience": strconv.Itoa(t.Experience),
		}
	}
	return records, nil
}

func (g *DirectoryGateway) LookupSalesmen(ctx context.Context, specialty string, maxResults int) ([]dialog.Record, error) {
	uow := g.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if specialty != "" {
		specs = append(specs, specification.BySpecialty{Specialty: specialty})
	}
	if maxResults > 0 {
		specs = append(specs, specification.Pagination{Limit: maxResults})
	}

	salesmen, err := uow.SalesmanRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	records := make([]dialog.Record, len(salesmen))
	for i, s := range salesmen {
		records[i] = dialog.Record{
			"name":      s.Name,
			"specialty": s.Specialty,
			"contact":   s.Contact,
		}
	}
	return records, nil
}

func (g *DirectoryGateway) LookupEmployees(ctx context.Context, department, position string, maxResults int) ([]dialog.Record, error) {
	uow := g.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if department != "" {
		specs = append(specs, specification.ByDepartment{Department: department})
	}
	if position != "" {
		specs = append(specs, specification.ByPosition{Position: position})
	}
	if maxResults > 0 {
		specs = append(specs, specification.Pagination{Limit: maxResults})
	}

	employees, err := uow.EmployeeRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	records := make([]dialog.Record, len(employees))
	for i, e := range employees {
		records[i] = dialog.Record{
			"name":       e.Name,
			"position":   e.Position,
			"department": e.Department,
			"contact":    e.Contact,
		}
	}
	return records, nil
}

func (g *DirectoryGateway) LookupHistory(ctx context.Context, email string, limit int) ([]dialog.Record, error) {
	uow := g.uowFactory.NewUnitOfWork(ctx)

	history, err := uow.ChatHistoryRepository().FindOne(ctx, specification.ByUserEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if history == nil {
		return []dialog.Record{}, nil
	}

	turns := history.Conversation
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	records := make([]dialog.Record, len(turns))
	for i, t := range turns {
		records[i] = dialog.Record{
			"user": t.User,
			"bot":  t.Bot,
			"time": t.Time.Format(time.RFC3339),
		}
	}
	return records, nil
}

func (g *DirectoryGateway) FindIdentity(ctx context.Context, email string) (*dialog.Identity, error) {
	uow := g.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dialog.Identity{Email: user.Email, Name: user.Name}, nil
}

// CreateIdentity delegates to the user service so the dialogue registration
// path shares the welcome email and event side effects with the REST API.
func (g *DirectoryGateway) CreateIdentity(ctx context.Context, email, name, phone string) (*dialog.Identity, error) {
	user, err := g.userService.CreateUser(ctx, &dto.CreateUserRequest{
		Email:  email,
		Name:   name,
		Mobile: phone,
	})
	if err != nil {
		return nil, err
	}
	return &dialog.Identity{Email: user.Email, Name: user.Name}, nil
}

func (g *DirectoryGateway) AppendHistory(ctx context.Context, email string, turns []dialog.HistoryTurn) error {
	uow := g.uowFactory.NewUnitOfWork(ctx)

	return uow.ChatHistoryRepository().Upsert(ctx, &entity.ChatHistory{
		UserEmail:    email,
		Conversation: turns,
	})
}

func productRecord(p *entity.Product) dialog.Record {
	return dialog.Record{
		"name":           p.Name,
		"description":    p.Description,
		"category":       p.Category,
		"specifications": p.Specifications,
		"price":          strconv.FormatFloat(p.Price, 'f', 2, 64),
	}
}
