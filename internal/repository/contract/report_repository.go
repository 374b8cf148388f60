package contract

import (
	"context"

	"careeriq-be/internal/entity"
	"careeriq-be/internal/repository/specification"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Report, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Report, error)
}
