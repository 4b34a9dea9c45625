package service

import (
	"context"
	"testing"

	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	users   map[uuid.UUID]*entity.User
	deleted []uuid.UUID
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.Id = uuid.New()
	r.users[user.Id] = user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.Id] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, spec := range specs {
		if byEmail, ok := spec.(specification.ByEmail); ok {
			for _, user := range r.users {
				if user.Email == byEmail.Email {
					return user, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	all := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, user)
	}
	return all, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

func newUserFixture() (*fakeUserRepo, IUserService) {
	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	svc := NewUserService(&fakeUowFactory{uow: &fakeUnitOfWork{userRepo: repo}}, nil, nil)
	return repo, svc
}

func TestDeleteUser(t *testing.T) {
	repo, svc := newUserFixture()

	id := uuid.New()
	repo.users[id] = &entity.User{Id: id, Email: "siti@example.com", Name: "Siti"}

	err := svc.DeleteUser(context.Background(), "siti@example.com")
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, repo.deleted)
	assert.Empty(t, repo.users)
}

func TestDeleteUserNotFound(t *testing.T) {
	_, svc := newUserFixture()

	err := svc.DeleteUser(context.Background(), "nobody@example.com")
	assert.ErrorContains(t, err, "user not found")
}
