package service

import (
	"context"
	"testing"

	"metro-chatbot-be/internal/dto"
	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/repository/contract"
	"metro-chatbot-be/internal/repository/specification"
	"metro-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeTechnicianRepo keeps technicians in a map and resolves ByID lookups
// without a database.
type fakeTechnicianRepo struct {
	technicians map[uuid.UUID]*entity.Technician
	updated     *entity.Technician
}

func (r *fakeTechnicianRepo) Create(ctx context.Context, technician *entity.Technician) error {
	technician.Id = uuid.New()
	r.technicians[technician.Id] = technician
	return nil
}

func (r *fakeTechnicianRepo) Update(ctx context.Context, technician *entity.Technician) error {
	r.technicians[technician.Id] = technician
	r.updated = technician
	return nil
}

func (r *fakeTechnicianRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.technicians, id)
	return nil
}

func (r *fakeTechnicianRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Technician, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if tech, found := r.technicians[byID.ID]; found {
				return tech, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeTechnicianRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Technician, error) {
	all := make([]*entity.Technician, 0, len(r.technicians))
	for _, tech := range r.technicians {
		all = append(all, tech)
	}
	return all, nil
}

type fakeUnitOfWork struct {
	technicianRepo contract.TechnicianRepository
	userRepo       contract.UserRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository             { return u.userRepo }
func (u *fakeUnitOfWork) ProductRepository() contract.ProductRepository       { return nil }
func (u *fakeUnitOfWork) TechnicianRepository() contract.TechnicianRepository { return u.technicianRepo }
func (u *fakeUnitOfWork) SalesmanRepository() contract.SalesmanRepository     { return nil }
func (u *fakeUnitOfWork) EmployeeRepository() contract.EmployeeRepository     { return nil }
func (u *fakeUnitOfWork) ChatHistoryRepository() contract.ChatHistoryRepository {
	return nil
}
func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository { return nil }

type fakeUowFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newTechnicianFixture() (*fakeTechnicianRepo, IDirectoryService) {
	repo := &fakeTechnicianRepo{technicians: map[uuid.UUID]*entity.Technician{}}
	svc := NewDirectoryService(&fakeUowFactory{uow: &fakeUnitOfWork{technicianRepo: repo}})
	return repo, svc
}

func TestUpdateTechnician(t *testing.T) {
	repo, svc := newTechnicianFixture()

	id := uuid.New()
	repo.technicians[id] = &entity.Technician{
		Id:         id,
		Name:       "Budi",
		Specialty:  "solar",
		Contact:    "0812000001",
		Experience: 3,
	}

	res, err := svc.UpdateTechnician(context.Background(), &dto.UpdateTechnicianRequest{
		Id:         id,
		Name:       "Budi Santoso",
		Specialty:  "generator",
		Contact:    "0812000002",
		Experience: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, id, res.Id)
	assert.Equal(t, "Budi Santoso", res.Name)
	assert.Equal(t, "generator", res.Specialty)
	assert.Equal(t, 5, res.Experience)

	assert.NotNil(t, repo.updated)
	assert.Equal(t, "0812000002", repo.updated.Contact)
}

func TestUpdateTechnicianNotFound(t *testing.T) {
	_, svc := newTechnicianFixture()

	_, err := svc.UpdateTechnician(context.Background(), &dto.UpdateTechnicianRequest{
		Id:   uuid.New(),
		Name: "Nobody",
	})
	assert.ErrorContains(t, err, "technician not found")
}

func TestGetTechnician(t *testing.T) {
	repo, svc := newTechnicianFixture()

	id := uuid.New()
	repo.technicians[id] = &entity.Technician{Id: id, Name: "Budi", Specialty: "solar"}

	res, err := svc.GetTechnician(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "Budi", res.Name)

	_, err = svc.GetTechnician(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "technician not found")
}
