package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentOrder struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderId    string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	Kind       string    `gorm:"type:varchar(16);not null"`
	TargetTier string    `gorm:"type:varchar(32);not null"`
	Amount     int64     `gorm:"not null"`
	Status     string    `gorm:"type:varchar(16);not null;index"`
	SnapToken  string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (PaymentOrder) TableName() string {
	return "payment_orders"
}
