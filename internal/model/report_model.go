package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Report struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Tier           string         `gorm:"type:varchar(32);not null"`
	Sections       datatypes.JSON `gorm:"type:jsonb;not null"`
	PromptVersions datatypes.JSON `gorm:"type:jsonb"`
	SchemaVersions datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (Report) TableName() string {
	return "reports"
}
