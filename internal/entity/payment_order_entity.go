package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderKindInitial = "initial"
	OrderKindUpgrade = "upgrade"

	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

// PaymentOrder tracks one gateway order, either the initial tier purchase
// or an upgrade charged at the exact tier difference.
type PaymentOrder struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	OrderId    string
	Kind       string
	TargetTier string
	Amount     int64
	Status     string
	SnapToken  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
