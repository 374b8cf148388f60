package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisSession is the unit of work for one profile analysis. The session
// id doubles as the access token for every follow-up call, so it is never
// listed or enumerable.
type AnalysisSession struct {
	Id                 uuid.UUID
	Email              string
	MobileNumber       string
	TargetRole         string
	FullName           string
	CurrentRole        string
	ResumeText         string
	LinkedinText       string
	Status             string
	Tier               string
	PendingUpgradeTier string
	CurrentStep        int
	AssemblyState      string
	FailureReason      string
	Extraction         map[string]interface{}
	Report             map[string]interface{}
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LinkedinProvided reports whether the profile carries LinkedIn content,
// which drives the confidence modifier in extraction.
func (s *AnalysisSession) LinkedinProvided() bool {
	return s.LinkedinText != ""
}
