package entity

import (
	"time"

	"github.com/google/uuid"
)

// LlmLog is one row of the append-only model call audit trail.
type LlmLog struct {
	Id            uuid.UUID
	SessionId     uuid.UUID
	CallName      string
	Model         string
	PromptVersion string
	Status        string
	InputLength   int
	DurationMs    int64
	RawResponse   string
	ErrorDetail   string
	CreatedAt     time.Time
}
