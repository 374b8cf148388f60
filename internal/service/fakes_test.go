package service

import (
	"context"
	"sync"

	"careeriq-be/internal/dto"
	"careeriq-be/internal/entity"
	"careeriq-be/internal/pkg/logger"
	"careeriq-be/internal/repository/contract"
	"careeriq-be/internal/repository/specification"
	"careeriq-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// nopLogger satisfies ILogger without touching disk.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

var _ logger.ILogger = nopLogger{}

// fakeUow backs the repository contracts with in-memory maps so service
// logic is testable without Postgres.
type fakeUow struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.AnalysisSession
	reports  []*entity.Report
	llmLogs  []*entity.LlmLog
	orders   map[string]*entity.PaymentOrder
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		sessions: map[uuid.UUID]*entity.AnalysisSession{},
		orders:   map[string]*entity.PaymentOrder{},
	}
}

func (f *fakeUow) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f }

func (f *fakeUow) Begin(ctx context.Context) error { return nil }
func (f *fakeUow) Commit() error                   { return nil }
func (f *fakeUow) Rollback() error                 { return nil }

func (f *fakeUow) SessionRepository() contract.SessionRepository           { return &fakeSessionRepo{f} }
func (f *fakeUow) ReportRepository() contract.ReportRepository             { return &fakeReportRepo{f} }
func (f *fakeUow) LlmLogRepository() contract.LlmLogRepository             { return &fakeLlmLogRepo{f} }
func (f *fakeUow) PaymentOrderRepository() contract.PaymentOrderRepository { return &fakeOrderRepo{f} }

func specID(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return byID.ID, true
		}
	}
	return uuid.Nil, false
}

func specFilter(specs []specification.Specification, field string) (interface{}, bool) {
	for _, s := range specs {
		if f, ok := s.(specification.FilterBy); ok && f.Field == field {
			return f.Value, true
		}
	}
	return nil, false
}

type fakeSessionRepo struct{ uow *fakeUow }

func (r *fakeSessionRepo) Create(_ context.Context, s *entity.AnalysisSession) error {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	copied := *s
	r.uow.sessions[s.Id] = &copied
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *entity.AnalysisSession) error {
	return r.Create(nil, s)
}

func (r *fakeSessionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.AnalysisSession, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	if id, ok := specID(specs); ok {
		if s, found := r.uow.sessions[id]; found {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.AnalysisSession, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	out := make([]*entity.AnalysisSession, 0, len(r.uow.sessions))
	for _, s := range r.uow.sessions {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeReportRepo struct{ uow *fakeUow }

func (r *fakeReportRepo) Create(_ context.Context, rep *entity.Report) error {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	copied := *rep
	r.uow.reports = append(r.uow.reports, &copied)
	return nil
}

func (r *fakeReportRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Report, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	if len(r.uow.reports) == 0 {
		return nil, nil
	}
	copied := *r.uow.reports[len(r.uow.reports)-1]
	return &copied, nil
}

func (r *fakeReportRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Report, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return append([]*entity.Report(nil), r.uow.reports...), nil
}

type fakeLlmLogRepo struct{ uow *fakeUow }

func (r *fakeLlmLogRepo) Create(_ context.Context, l *entity.LlmLog) error {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	copied := *l
	r.uow.llmLogs = append(r.uow.llmLogs, &copied)
	return nil
}

func (r *fakeLlmLogRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.LlmLog, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return append([]*entity.LlmLog(nil), r.uow.llmLogs...), nil
}

func (r *fakeLlmLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeOrderRepo struct{ uow *fakeUow }

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.PaymentOrder) error {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	copied := *o
	r.uow.orders[o.OrderId] = &copied
	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *entity.PaymentOrder) error {
	return r.Create(nil, o)
}

func (r *fakeOrderRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.PaymentOrder, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	if v, ok := specFilter(specs, "order_id"); ok {
		if o, found := r.uow.orders[v.(string)]; found {
			copied := *o
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.PaymentOrder, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	out := make([]*entity.PaymentOrder, 0, len(r.uow.orders))
	for _, o := range r.uow.orders {
		copied := *o
		out = append(out, &copied)
	}
	return out, nil
}

// capturingPublisher records published jobs instead of hitting the bus.
type capturingPublisher struct {
	jobs []*dto.AnalysisJobMessage
}

func (p *capturingPublisher) PublishAnalysisJob(_ context.Context, job *dto.AnalysisJobMessage) error {
	p.jobs = append(p.jobs, job)
	return nil
}
