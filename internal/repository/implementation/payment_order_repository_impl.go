package implementation

import (
	"context"
	"errors"

	"careeriq-be/internal/entity"
	"careeriq-be/internal/mapper"
	"careeriq-be/internal/model"
	"careeriq-be/internal/repository/contract"
	"careeriq-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PaymentOrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaymentOrderMapper
}

func NewPaymentOrderRepository(db *gorm.DB) contract.PaymentOrderRepository {
	return &PaymentOrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaymentOrderMapper(),
	}
}

func (r *PaymentOrderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PaymentOrderRepositoryImpl) Create(ctx context.Context, order *entity.PaymentOrder) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaymentOrderRepositoryImpl) Update(ctx context.Context, order *entity.PaymentOrder) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaymentOrderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PaymentOrder, error) {
	var m model.PaymentOrder
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PaymentOrderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentOrder, error) {
	var models []*model.PaymentOrder
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PaymentOrder, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
