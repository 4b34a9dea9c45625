package unitofwork

import "context"

// RepositoryFactory creates request-scoped units of work.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
