package legal

// Urgency enum
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// Valid reports whether u is one of the known urgency levels.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// IssueCategory is a specific fact pattern inside a domain with fixed guidance.
type IssueCategory struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Laws        []string `json:"laws"`      // presentation order
	Steps       []string `json:"steps"`     // procedural order
	Documents   []string `json:"documents"`
	Urgency     Urgency  `json:"urgency"`
	Timeline    string   `json:"timeline"`
}

// Domain is a broad legal area with its own keyword triggers.
type Domain struct {
	Key        string          `json:"key"`
	Keywords   []string        `json:"keywords"`
	Categories []IssueCategory `json:"categories"`
}

// Classification is the outcome of Classify. DomainKey is empty when the
// default category was selected.
type Classification struct {
	Category  IssueCategory
	DomainKey string
	Score     int
}

// IsDefault reports whether no domain keyword matched.
func (c Classification) IsDefault() bool { return c.DomainKey == "" }
