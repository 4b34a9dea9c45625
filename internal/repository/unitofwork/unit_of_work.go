package unitofwork

import (
	"context"

	"metro-chatbot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProductRepository() contract.ProductRepository
	TechnicianRepository() contract.TechnicianRepository
	SalesmanRepository() contract.SalesmanRepository
	EmployeeRepository() contract.EmployeeRepository
	ChatHistoryRepository() contract.ChatHistoryRepository
	DocumentRepository() contract.DocumentRepository
}
