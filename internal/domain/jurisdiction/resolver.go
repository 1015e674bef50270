package jurisdiction

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolve detects the jurisdiction named in a free-text location.
//
// Cities are checked before states, each in table order, and the first key
// that is a substring of the lowercased location wins. A location naming two
// cities therefore resolves to the one defined first.
func (idx *Index) Resolve(location string) Record {
	if strings.TrimSpace(location) == "" {
		return Record{Detected: false, Message: MessageNoLocation}
	}
	loc := strings.ToLower(location)

	for _, c := range idx.cities {
		if !strings.Contains(loc, c.Key) {
			continue
		}
		rec := Record{
			Detected:      true,
			City:          capitalize(c.Key),
			State:         c.State,
			ConsumerForum: c.ConsumerForum,
		}
		if s, ok := idx.state(c.State); ok {
			rec.HighCourt = s.HighCourt
			rec.Capital = s.Capital
		}
		return rec
	}

	for _, s := range idx.states {
		if !strings.Contains(loc, s.Key) {
			continue
		}
		return Record{
			Detected:  true,
			State:     cases.Title(language.English).String(s.Key),
			HighCourt: s.HighCourt,
			Capital:   s.Capital,
			Districts: s.Districts,
		}
	}

	return Record{Detected: false, Message: MessageNotRecognized}
}

// capitalize upper-cases the first letter and leaves the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
