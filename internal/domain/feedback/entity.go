package feedback

import (
	"errors"
	"time"
)

// DefaultCapacity is the number of entries the ledger keeps.
const DefaultCapacity = 100

// ErrInvalidRating is returned by Submit when rating is outside [1,5].
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Entry is one piece of user feedback.
type Entry struct {
	ID         string    `json:"id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	WasHelpful bool      `json:"wasHelpful"`
	Timestamp  time.Time `json:"timestamp"`
}

// Stats are aggregates over the entries currently held.
type Stats struct {
	TotalFeedback int     `json:"totalFeedback"`
	AverageRating float64 `json:"averageRating"`
	HelpfulCount  int     `json:"helpfulResponses"`
}
