package contract

import (
	"context"

	"careeriq-be/internal/entity"
	"careeriq-be/internal/repository/specification"
)

type PaymentOrderRepository interface {
	Create(ctx context.Context, order *entity.PaymentOrder) error
	Update(ctx context.Context, order *entity.PaymentOrder) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PaymentOrder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentOrder, error)
}
