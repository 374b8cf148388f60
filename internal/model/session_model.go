package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnalysisSession struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email              string         `gorm:"type:varchar(255);not null"`
	MobileNumber       string         `gorm:"type:varchar(32)"`
	TargetRole         string         `gorm:"type:varchar(255);not null"`
	FullName           string         `gorm:"type:varchar(255)"`
	CurrentRole        string         `gorm:"type:varchar(255)"`
	ResumeText         string         `gorm:"type:text;not null"`
	LinkedinText       string         `gorm:"type:text"`
	Status             string         `gorm:"type:varchar(32);not null;index"`
	Tier               string         `gorm:"type:varchar(32)"`
	PendingUpgradeTier string         `gorm:"type:varchar(32)"`
	CurrentStep        int            `gorm:"not null;default:0"`
	AssemblyState      string         `gorm:"type:varchar(64)"`
	FailureReason      string         `gorm:"type:text"`
	Extraction         datatypes.JSON `gorm:"type:jsonb"`
	Report             datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
}

func (AnalysisSession) TableName() string {
	return "analysis_sessions"
}
