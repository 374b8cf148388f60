package dto

import (
	"github.com/google/uuid"
)

type ProgressResponse struct {
	SessionId     uuid.UUID `json:"session_id"`
	Status        string    `json:"status"`
	CurrentStep   int       `json:"current_step"`
	Percent       int       `json:"percent"`
	AssemblyState string    `json:"assembly_state,omitempty"`
	FailureReason string    `json:"failure_reason,omitempty"`
}

type ReportResponse struct {
	SessionId        uuid.UUID              `json:"session_id"`
	Tier             string                 `json:"tier"`
	TargetRole       string                 `json:"target_role"`
	FullName         string                 `json:"full_name,omitempty"`
	CurrentRole      string                 `json:"current_role,omitempty"`
	LinkedinProvided bool                   `json:"linkedin_provided"`
	Sections         map[string]interface{} `json:"sections"`
	PromptVersions   map[string]string      `json:"prompt_versions"`
	SchemaVersions   map[string]string      `json:"schema_versions"`
	Disclaimer       string                 `json:"disclaimer"`
}

type SendReportRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Email     string    `json:"email" validate:"omitempty,email"`
}

type SendReportResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	SentTo    string    `json:"sent_to"`
}
