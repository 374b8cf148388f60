package mapper

import (
	"careeriq-be/internal/entity"
	"careeriq-be/internal/model"
)

type PaymentOrderMapper struct{}

func NewPaymentOrderMapper() *PaymentOrderMapper {
	return &PaymentOrderMapper{}
}

func (m *PaymentOrderMapper) ToEntity(o *model.PaymentOrder) *entity.PaymentOrder {
	if o == nil {
		return nil
	}
	return &entity.PaymentOrder{
		Id:         o.Id,
		SessionId:  o.SessionId,
		OrderId:    o.OrderId,
		Kind:       o.Kind,
		TargetTier: o.TargetTier,
		Amount:     o.Amount,
		Status:     o.Status,
		SnapToken:  o.SnapToken,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func (m *PaymentOrderMapper) ToModel(o *entity.PaymentOrder) *model.PaymentOrder {
	if o == nil {
		return nil
	}
	return &model.PaymentOrder{
		Id:         o.Id,
		SessionId:  o.SessionId,
		OrderId:    o.OrderId,
		Kind:       o.Kind,
		TargetTier: o.TargetTier,
		Amount:     o.Amount,
		Status:     o.Status,
		SnapToken:  o.SnapToken,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
