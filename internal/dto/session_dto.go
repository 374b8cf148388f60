package dto

import (
	"time"

	"github.com/google/uuid"
)

// UploadRequest carries the form fields next to the multipart files. The
// files themselves are read off the multipart form in the controller.
type UploadRequest struct {
	Email        string `json:"email" validate:"required,email"`
	MobileNumber string `json:"mobile_number" validate:"required,min=6,max=20"`
	TargetRole   string `json:"target_role" validate:"required,min=2,max=255"`
}

type UploadResponse struct {
	SessionId        uuid.UUID `json:"session_id"`
	LinkedinProvided bool      `json:"linkedin_provided"`
}

// SessionResponse is the diagnostic view of a session. The session id is
// the access token, so this only ever answers for a known id.
type SessionResponse struct {
	SessionId          uuid.UUID `json:"session_id"`
	Status             string    `json:"status"`
	Tier               string    `json:"tier,omitempty"`
	PendingUpgradeTier string    `json:"pending_upgrade_tier,omitempty"`
	CurrentStep        int       `json:"current_step"`
	AssemblyState      string    `json:"assembly_state,omitempty"`
	FailureReason      string    `json:"failure_reason,omitempty"`
	TargetRole         string    `json:"target_role"`
	FullName           string    `json:"full_name,omitempty"`
	CurrentRole        string    `json:"current_role,omitempty"`
	LinkedinProvided   bool      `json:"linkedin_provided"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
