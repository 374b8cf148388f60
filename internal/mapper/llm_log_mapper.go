package mapper

import (
	"careeriq-be/internal/entity"
	"careeriq-be/internal/model"
)

type LlmLogMapper struct{}

func NewLlmLogMapper() *LlmLogMapper {
	return &LlmLogMapper{}
}

func (m *LlmLogMapper) ToModel(l *entity.LlmLog) *model.LlmLog {
	if l == nil {
		return nil
	}
	return &model.LlmLog{
		Id:            l.Id,
		SessionId:     l.SessionId,
		CallName:      l.CallName,
		Model:         l.Model,
		PromptVersion: l.PromptVersion,
		Status:        l.Status,
		InputLength:   l.InputLength,
		DurationMs:    l.DurationMs,
		RawResponse:   l.RawResponse,
		ErrorDetail:   l.ErrorDetail,
		CreatedAt:     l.CreatedAt,
	}
}

func (m *LlmLogMapper) ToEntity(l *model.LlmLog) *entity.LlmLog {
	if l == nil {
		return nil
	}
	return &entity.LlmLog{
		Id:            l.Id,
		SessionId:     l.SessionId,
		CallName:      l.CallName,
		Model:         l.Model,
		PromptVersion: l.PromptVersion,
		Status:        l.Status,
		InputLength:   l.InputLength,
		DurationMs:    l.DurationMs,
		RawResponse:   l.RawResponse,
		ErrorDetail:   l.ErrorDetail,
		CreatedAt:     l.CreatedAt,
	}
}
