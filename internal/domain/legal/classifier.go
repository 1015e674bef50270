package legal

import "strings"

// GeneralCategory is returned when no domain keyword occurs in a description.
func GeneralCategory() IssueCategory {
	return IssueCategory{
		Key:         "general",
		Name:        "General Legal Query",
		Description: "Your issue requires specific legal consultation",
		Laws:        []string{"Indian Constitution", "Relevant State Laws"},
		Steps: []string{
			"Document all facts and collect relevant papers",
			"Consult a lawyer for personalized advice",
			"Visit your nearest Legal Aid office for free consultation",
			"You can also call National Legal Services Authority helpline",
		},
		Documents: []string{"Any relevant papers or evidence you have"},
		Urgency:   UrgencyMedium,
		Timeline:  "Consult a lawyer within 7 days",
	}
}

// Classify picks the single best category for description.
//
// A domain becomes a candidate when any of its keywords is a substring of the
// lowercased description; its score is the number of its keywords present.
// The best candidate is only replaced by a strictly higher score, so ties go
// to the first domain in table order and then to the first category inside
// it. Descriptions without any keyword get GeneralCategory and an empty
// domain key.
func (kb *KnowledgeBase) Classify(description string) Classification {
	text := strings.ToLower(description)

	var (
		best      Classification
		bestScore int
		found     bool
	)
	for _, d := range kb.domains {
		score := matchCount(text, d.Keywords)
		if score == 0 {
			continue
		}
		for _, c := range d.Categories {
			if score > bestScore {
				bestScore = score
				best = Classification{Category: c, DomainKey: d.Key, Score: score}
				found = true
			}
		}
	}

	if !found {
		return Classification{Category: GeneralCategory()}
	}
	return best
}

// MatchedKeywords lists the keywords of domainKey that occur in description,
// in table order. Used to explain a classification.
func (kb *KnowledgeBase) MatchedKeywords(domainKey, description string) []string {
	d, ok := kb.Domain(domainKey)
	if !ok {
		return nil
	}
	text := strings.ToLower(description)
	var out []string
	for _, kw := range d.Keywords {
		if strings.Contains(text, kw) {
			out = append(out, kw)
		}
	}
	return out
}

func matchCount(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
