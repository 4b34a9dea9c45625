package implementation

import (
	"context"
	"errors"

	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/mapper"
	"metro-chatbot-be/internal/model"
	"metro-chatbot-be/internal/repository/contract"
	"metro-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalesmanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SalesmanMapper
}

func NewSalesmanRepository(db *gorm.DB) contract.SalesmanRepository {
	return &SalesmanRepositoryImpl{
		db:     db,
		mapper: mapper.NewSalesmanMapper(),
	}
}

func (r *SalesmanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SalesmanRepositoryImpl) Create(ctx context.Context, salesman *entity.Salesman) error {
	m := r.mapper.ToModel(salesman)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*salesman = *r.mapper.ToEntity(m)
	return nil
}

func (r *SalesmanRepositoryImpl) Update(ctx context.Context, salesman *entity.Salesman) error {
	m := r.mapper.ToModel(salesman)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*salesman = *r.mapper.ToEntity(m)
	return nil
}

func (r *SalesmanRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Salesman{}).Error
}

func (r *SalesmanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Salesman, error) {
	var m model.Salesman
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SalesmanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Salesman, error) {
	var models []*model.Salesman
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Salesman, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
