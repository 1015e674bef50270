package jurisdiction

const (
	MessageNoLocation    = "Please provide your location for jurisdiction-specific information"
	MessageNotRecognized = "Could not detect specific jurisdiction. General Indian law information provided."
)

// Record is the jurisdiction detected for one location string. Only the
// fields of the matched branch are set; Message is set only when nothing was
// detected.
type Record struct {
	Detected      bool   `json:"detected"`
	Message       string `json:"message,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	HighCourt     string `json:"highCourt,omitempty"`
	ConsumerForum string `json:"consumerForum,omitempty"`
	Capital       string `json:"capital,omitempty"`
	Districts     int    `json:"districts,omitempty"`
}

// City entry of the index. Key is lowercase.
type City struct {
	Key           string
	State         string
	ConsumerForum string
}

// State entry of the index. Key is lowercase.
type State struct {
	Key       string
	Capital   string
	HighCourt string
	Districts int
}
