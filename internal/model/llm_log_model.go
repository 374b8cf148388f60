package model

import (
	"time"

	"github.com/google/uuid"
)

type LlmLog struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId     uuid.UUID `gorm:"type:uuid;not null;index"`
	CallName      string    `gorm:"type:varchar(64);not null"`
	Model         string    `gorm:"type:varchar(64);not null"`
	PromptVersion string    `gorm:"type:varchar(16)"`
	Status        string    `gorm:"type:varchar(32);not null"`
	InputLength   int       `gorm:"not null;default:0"`
	DurationMs    int64     `gorm:"not null;default:0"`
	RawResponse   string    `gorm:"type:text"`
	ErrorDetail   string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (LlmLog) TableName() string {
	return "llm_logs"
}
