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

type TechnicianRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TechnicianMapper
}

func NewTechnicianRepository(db *gorm.DB) contract.TechnicianRepository {
	return &TechnicianRepositoryImpl{
		db:     db,
		mapper: mapper.NewTechnicianMapper(),
	}
}

func (r *TechnicianRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TechnicianRepositoryImpl) Create(ctx context.Context, technician *entity.Technician) error {
	m := r.mapper.ToModel(technician)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*technician = *r.mapper.ToEntity(m)
	return nil
}

func (r *TechnicianRepositoryImpl) Update(ctx context.Context, technician *entity.Technician) error {
	m := r.mapper.ToModel(technician)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*technician = *r.mapper.ToEntity(m)
	return nil
}

func (r *TechnicianRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Technician{}).Error
}

func (r *TechnicianRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Technician, error) {
	var m model.Technician
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TechnicianRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Technician, error) {
	var models []*model.Technician
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Technician, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
