package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report is an immutable snapshot of the assembled sections at the moment a
// pipeline run finished. The live copy on the session keeps evolving across
// upgrades; snapshots never change.
type Report struct {
	Id             uuid.UUID
	SessionId      uuid.UUID
	Tier           string
	Sections       map[string]interface{}
	PromptVersions map[string]string
	SchemaVersions map[string]string
	CreatedAt      time.Time
}
