package archive

import (
	"errors"
	"time"
)

// RecordID identifier type
type RecordID string

// ErrNotConfigured is returned when no archive backend is set up.
var ErrNotConfigured = errors.New("archive not configured")

// Record is the privacy-preserving trace of one analysis. It never carries
// the user's description text.
type Record struct {
	ID             RecordID  `json:"id"`
	Domain         string    `json:"domain"`
	Category       string    `json:"category"`
	Urgency        string    `json:"urgency"`
	State          string    `json:"state,omitempty"`
	City           string    `json:"city,omitempty"`
	ProfessionKind string    `json:"profession_kind,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
