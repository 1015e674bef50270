package jurisdiction

import (
	"fmt"
	"strings"
)

// Index holds the city and state tables in definition order.
type Index struct {
	cities []City
	states []State
}

// NewIndex validates the tables and returns an index over them.
func NewIndex(cities []City, states []State) (*Index, error) {
	idx := &Index{cities: cities, states: states}
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Validate checks that keys are lowercase and unique and that every city
// points at a known state.
func (idx *Index) Validate() error {
	seenStates := make(map[string]bool, len(idx.states))
	for _, s := range idx.states {
		if s.Key == "" || s.Key != strings.ToLower(s.Key) {
			return fmt.Errorf("jurisdiction index: state key %q must be non-empty lowercase", s.Key)
		}
		if seenStates[s.Key] {
			return fmt.Errorf("jurisdiction index: duplicate state %q", s.Key)
		}
		seenStates[s.Key] = true
	}
	seenCities := make(map[string]bool, len(idx.cities))
	for _, c := range idx.cities {
		if c.Key == "" || c.Key != strings.ToLower(c.Key) {
			return fmt.Errorf("jurisdiction index: city key %q must be non-empty lowercase", c.Key)
		}
		if seenCities[c.Key] {
			return fmt.Errorf("jurisdiction index: duplicate city %q", c.Key)
		}
		seenCities[c.Key] = true
		if !seenStates[strings.ToLower(c.State)] {
			return fmt.Errorf("jurisdiction index: city %q references unknown state %q", c.Key, c.State)
		}
	}
	return nil
}

func (idx *Index) state(name string) (State, bool) {
	key := strings.ToLower(name)
	for _, s := range idx.states {
		if s.Key == key {
			return s, true
		}
	}
	return State{}, false
}

// Default returns the built-in table of major Indian cities and states.
func Default() *Index {
	idx, err := NewIndex(defaultCities(), defaultStates())
	if err != nil {
		panic(err)
	}
	return idx
}

func defaultStates() []State {
	return []State{
		{Key: "maharashtra", Capital: "Mumbai", HighCourt: "Bombay High Court", Districts: 36},
		{Key: "delhi", Capital: "New Delhi", HighCourt: "Delhi High Court", Districts: 11},
		{Key: "karnataka", Capital: "Bengaluru", HighCourt: "Karnataka High Court", Districts: 31},
		{Key: "tamil nadu", Capital: "Chennai", HighCourt: "Madras High Court", Districts: 38},
		{Key: "west bengal", Capital: "Kolkata", HighCourt: "Calcutta High Court", Districts: 23},
		{Key: "uttar pradesh", Capital: "Lucknow", HighCourt: "Allahabad High Court", Districts: 75},
		{Key: "gujarat", Capital: "Gandhinagar", HighCourt: "Gujarat High Court", Districts: 33},
		{Key: "rajasthan", Capital: "Jaipur", HighCourt: "Rajasthan High Court", Districts: 50},
		{Key: "telangana", Capital: "Hyderabad", HighCourt: "Telangana High Court", Districts: 33},
		{Key: "punjab", Capital: "Chandigarh", HighCourt: "Punjab and Haryana High Court", Districts: 23},
	}
}

func defaultCities() []City {
	return []City{
		{Key: "mumbai", State: "Maharashtra", ConsumerForum: "Mumbai Consumer Disputes Redressal Commission"},
		{Key: "delhi", State: "Delhi", ConsumerForum: "Delhi State Consumer Disputes Redressal Commission"},
		{Key: "bengaluru", State: "Karnataka", ConsumerForum: "Karnataka State Consumer Disputes Redressal Commission"},
		{Key: "hyderabad", State: "Telangana", ConsumerForum: "Telangana State Consumer Disputes Redressal Commission"},
		{Key: "chennai", State: "Tamil Nadu", ConsumerForum: "Tamil Nadu State Consumer Disputes Redressal Commission"},
		{Key: "kolkata", State: "West Bengal", ConsumerForum: "West Bengal State Consumer Disputes Redressal Commission"},
		{Key: "pune", State: "Maharashtra", ConsumerForum: "Pune Consumer Disputes Redressal Commission"},
		{Key: "ahmedabad", State: "Gujarat", ConsumerForum: "Gujarat State Consumer Disputes Redressal Commission"},
	}
}
