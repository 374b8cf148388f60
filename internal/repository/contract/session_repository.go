package contract

import (
	"context"

	"careeriq-be/internal/entity"
	"careeriq-be/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.AnalysisSession) error
	Update(ctx context.Context, session *entity.AnalysisSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnalysisSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnalysisSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
