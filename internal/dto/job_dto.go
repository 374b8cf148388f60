package dto

import "github.com/google/uuid"

const (
	JobKindInitial = "initial"
	JobKindUpgrade = "upgrade"
)

// AnalysisJobMessage is the payload published to the background pipeline
// worker after a payment settles or an upgrade is requested.
type AnalysisJobMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	Kind      string    `json:"kind"`
}
