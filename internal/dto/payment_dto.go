package dto

import "github.com/google/uuid"

type CreateOrderRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Tier      string    `json:"tier" validate:"required,oneof=diagnosis risk full_stack"`
}

type CreateOrderResponse struct {
	OrderId   string `json:"order_id"`
	SnapToken string `json:"snap_token"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

type CreateUpgradeOrderRequest struct {
	SessionId  uuid.UUID `json:"session_id" validate:"required"`
	TargetTier string    `json:"target_tier" validate:"required,oneof=risk full_stack"`
}

// PaymentNotificationRequest mirrors the gateway webhook payload. The
// signature is SHA512(order_id + status_code + gross_amount + server key).
type PaymentNotificationRequest struct {
	OrderId           string `json:"order_id" validate:"required"`
	StatusCode        string `json:"status_code" validate:"required"`
	GrossAmount       string `json:"gross_amount" validate:"required"`
	SignatureKey      string `json:"signature_key" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	FraudStatus       string `json:"fraud_status"`
}

type VerifyPaymentResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Status    string    `json:"status"`
	Tier      string    `json:"tier"`
}
