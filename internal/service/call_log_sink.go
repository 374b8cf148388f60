package service

import (
	"context"

	"careeriq-be/internal/entity"
	"careeriq-be/internal/pkg/logger"
	"careeriq-be/internal/repository/unitofwork"
	"careeriq-be/pkg/intel"

	"github.com/google/uuid"
)

// callLogSink persists gateway call records into the llm_logs audit table.
// A sink failure only logs a warning; the pipeline never fails because the
// audit trail hiccuped.
type callLogSink struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCallLogSink(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) intel.CallLog {
	return &callLogSink{uowFactory: uowFactory, logger: log}
}

func (s *callLogSink) Record(ctx context.Context, rec intel.CallRecord) {
	sessionId, err := uuid.Parse(rec.SessionID)
	if err != nil {
		s.logger.Warn("call_log", "record carries unparsable session id", map[string]interface{}{
			"session_id": rec.SessionID,
			"call_name":  rec.CallName,
		})
		return
	}

	log := &entity.LlmLog{
		Id:            uuid.New(),
		SessionId:     sessionId,
		CallName:      rec.CallName,
		Model:         rec.Model,
		PromptVersion: rec.PromptVersion,
		Status:        rec.Status,
		InputLength:   rec.InputLength,
		DurationMs:    rec.DurationMs,
		RawResponse:   rec.RawResponse,
		ErrorDetail:   rec.ErrorDetail,
		CreatedAt:     rec.CreatedAt,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LlmLogRepository().Create(ctx, log); err != nil {
		s.logger.Warn("call_log", "failed to persist call record", map[string]interface{}{
			"session_id": rec.SessionID,
			"call_name":  rec.CallName,
			"error":      err.Error(),
		})
	}
}
