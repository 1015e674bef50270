package triage

import (
	"strings"
	"time"

	"github.com/bryanwahyu/legal-triage/internal/domain/jurisdiction"
	"github.com/bryanwahyu/legal-triage/internal/domain/legal"
)

// Disclaimer is attached to every analysis.
const Disclaimer = "This is general legal information only. For specific advice, please consult a qualified lawyer."

// GeneralDomain is the wire value of Analysis.Domain for the default category.
const GeneralDomain = "general"

// ProfessionKind is the bucket a free-text profession falls into.
type ProfessionKind string

const (
	ProfessionNone       ProfessionKind = ""
	ProfessionStudent    ProfessionKind = "student"
	ProfessionBusiness   ProfessionKind = "business"
	ProfessionGovernment ProfessionKind = "government"
	ProfessionOther      ProfessionKind = "other"
)

var professionTips = map[ProfessionKind]string{
	ProfessionStudent:    "As a student, you may be eligible for free legal aid. Check with your college legal cell.",
	ProfessionBusiness:   "Consider consulting a corporate lawyer who specializes in business matters.",
	ProfessionGovernment: "Government employees have specific legal protections. Consult your departmental legal advisor.",
	ProfessionOther:      "Legal aid services are available if you cannot afford a lawyer.",
}

// Analysis is the issue summary block of a result.
type Analysis struct {
	Category        string        `json:"category"`
	Description     string        `json:"description"`
	Domain          string        `json:"domain"`
	Urgency         legal.Urgency `json:"urgency"`
	Timeline        string        `json:"timeline"`
	MatchedKeywords []string      `json:"matchedKeywords,omitempty"`
}

// Result is the full answer for one described issue.
type Result struct {
	Analysis          Analysis            `json:"analysis"`
	Jurisdiction      jurisdiction.Record `json:"jurisdiction"`
	ApplicableLaws    []string            `json:"applicableLaws"`
	RecommendedSteps  []string            `json:"recommendedSteps"`
	RequiredDocuments []string            `json:"requiredDocuments"`
	ProfessionTip     string              `json:"professionTip"`
	Disclaimer        string              `json:"disclaimer"`
	GeneratedAt       time.Time           `json:"generatedAt"`
}

// ClassifyProfession buckets a free-text profession. Checks run in order:
// student, business/entrepreneur, govt/government, anything else.
func ClassifyProfession(profession string) ProfessionKind {
	p := strings.ToLower(strings.TrimSpace(profession))
	switch {
	case p == "":
		return ProfessionNone
	case strings.Contains(p, "student"):
		return ProfessionStudent
	case strings.Contains(p, "business"), strings.Contains(p, "entrepreneur"):
		return ProfessionBusiness
	case strings.Contains(p, "govt"), strings.Contains(p, "government"):
		return ProfessionGovernment
	default:
		return ProfessionOther
	}
}

// ProfessionTip returns the tip for profession, empty when none was given.
func ProfessionTip(profession string) string {
	return professionTips[ClassifyProfession(profession)]
}

// Compose merges a classification and a jurisdiction into a Result. The
// category's lists are copied so callers cannot alter the static tables.
func Compose(c legal.Classification, j jurisdiction.Record, profession string, now time.Time) Result {
	domain := c.DomainKey
	if c.IsDefault() {
		domain = GeneralDomain
	}
	cat := c.Category
	return Result{
		Analysis: Analysis{
			Category:    cat.Name,
			Description: cat.Description,
			Domain:      domain,
			Urgency:     cat.Urgency,
			Timeline:    cat.Timeline,
		},
		Jurisdiction:      j,
		ApplicableLaws:    clone(cat.Laws),
		RecommendedSteps:  clone(cat.Steps),
		RequiredDocuments: clone(cat.Documents),
		ProfessionTip:     ProfessionTip(profession),
		Disclaimer:        Disclaimer,
		GeneratedAt:       now,
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
