package implementation

import (
	"context"

	"careeriq-be/internal/entity"
	"careeriq-be/internal/mapper"
	"careeriq-be/internal/model"
	"careeriq-be/internal/repository/contract"
	"careeriq-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LlmLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LlmLogMapper
}

func NewLlmLogRepository(db *gorm.DB) contract.LlmLogRepository {
	return &LlmLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewLlmLogMapper(),
	}
}

func (r *LlmLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LlmLogRepositoryImpl) Create(ctx context.Context, log *entity.LlmLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *LlmLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LlmLog, error) {
	var models []*model.LlmLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.LlmLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *LlmLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LlmLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
