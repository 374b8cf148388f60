package unitofwork

import (
	"context"

	"careeriq-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRepository() contract.SessionRepository
	ReportRepository() contract.ReportRepository
	LlmLogRepository() contract.LlmLogRepository
	PaymentOrderRepository() contract.PaymentOrderRepository
}
