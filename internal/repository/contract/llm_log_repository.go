package contract

import (
	"context"

	"careeriq-be/internal/entity"
	"careeriq-be/internal/repository/specification"
)

// LlmLogRepository is append-only. There is no update or delete on the
// audit trail.
type LlmLogRepository interface {
	Create(ctx context.Context, log *entity.LlmLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LlmLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
