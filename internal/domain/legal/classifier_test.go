package legal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/legal-triage/internal/domain/legal"
)

func TestDefaultKnowledgeBaseIsValid(t *testing.T) {
	kb := legal.Default()
	require.NoError(t, kb.Validate())

	var keys []string
	for _, d := range kb.Domains() {
		keys = append(keys, d.Key)
	}
	assert.Equal(t, []string{"employment", "property", "consumer", "family", "traffic", "criminal"}, keys)
}

func TestNewKnowledgeBaseRejectsBrokenTables(t *testing.T) {
	good := legal.IssueCategory{
		Key: "c", Name: "C", Laws: []string{"l"}, Steps: []string{"s"},
		Documents: []string{"d"}, Urgency: legal.UrgencyLow,
	}

	tests := []struct {
		name    string
		domains []legal.Domain
		want    string
	}{
		{name: "empty", domains: nil, want: "no domains"},
		{
			name:    "duplicate domain",
			domains: []legal.Domain{{Key: "a", Keywords: []string{"x"}, Categories: []legal.IssueCategory{good}}, {Key: "a", Keywords: []string{"y"}, Categories: []legal.IssueCategory{good}}},
			want:    "duplicate domain",
		},
		{
			name:    "uppercase keyword",
			domains: []legal.Domain{{Key: "a", Keywords: []string{"Job"}, Categories: []legal.IssueCategory{good}}},
			want:    "lowercase",
		},
		{
			name:    "no categories",
			domains: []legal.Domain{{Key: "a", Keywords: []string{"x"}}},
			want:    "no categories",
		},
		{
			name: "bad urgency",
			domains: []legal.Domain{{Key: "a", Keywords: []string{"x"}, Categories: []legal.IssueCategory{{
				Key: "c", Laws: []string{"l"}, Steps: []string{"s"}, Documents: []string{"d"}, Urgency: "URGENT",
			}}}},
			want: "invalid urgency",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := legal.NewKnowledgeBase(tt.domains...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestClassifySingleDomainKeywords(t *testing.T) {
	kb := legal.Default()

	tests := []struct {
		description string
		domain      string
		category    string
	}{
		{"I lost my job and my overtime is unpaid", "employment", "wrongful_termination"},
		{"The landlord wants the tenant out of the flat", "property", "tenant_eviction"},
		{"The warranty on my purchase was refused", "consumer", "defective_product"},
		{"We are going through a divorce and custody battle", "family", "domestic_violence"},
		{"I got a challan while driving my vehicle", "traffic", "traffic_challan"},
		{"My neighbour was arrested and needs bail", "criminal", "false_fir"},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			got := kb.Classify(tt.description)
			assert.Equal(t, tt.domain, got.DomainKey)
			assert.Equal(t, tt.category, got.Category.Key)
			assert.False(t, got.IsDefault())
		})
	}
}

func TestClassifyNoKeywordReturnsGeneral(t *testing.T) {
	kb := legal.Default()

	got := kb.Classify("Something odd happened to me yesterday evening")
	assert.True(t, got.IsDefault())
	assert.Equal(t, "", got.DomainKey)
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, "General Legal Query", got.Category.Name)
	assert.Equal(t, legal.UrgencyMedium, got.Category.Urgency)
	assert.Equal(t, []string{"Indian Constitution", "Relevant State Laws"}, got.Category.Laws)
	assert.Len(t, got.Category.Steps, 4)
	assert.Len(t, got.Category.Documents, 1)
	assert.Equal(t, "Consult a lawyer within 7 days", got.Category.Timeline)
}

func TestClassifyHigherScoreWins(t *testing.T) {
	kb := legal.Default()

	// one consumer keyword ("fraud") against three criminal ones
	got := kb.Classify("police made an arrest for fraud")
	assert.Equal(t, "criminal", got.DomainKey)
	assert.Equal(t, 3, got.Score)
}

func TestClassifyTieGoesToFirstDomain(t *testing.T) {
	kb := legal.Default()

	// "fraud" is a keyword of both consumer and criminal; consumer is defined first
	desc := "this was plain fraud"
	first := kb.Classify(desc)
	assert.Equal(t, "consumer", first.DomainKey)
	assert.Equal(t, "defective_product", first.Category.Key)

	for i := 0; i < 50; i++ {
		assert.Equal(t, first, kb.Classify(desc))
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	kb := legal.Default()

	lower := kb.Classify("my employer withheld salary")
	upper := kb.Classify(strings.ToUpper("my employer withheld salary"))
	assert.Equal(t, lower, upper)
	assert.Equal(t, "employment", upper.DomainKey)
}

func TestClassifyShortInputIsStillClassified(t *testing.T) {
	kb := legal.Default()

	got := kb.Classify("job")
	assert.Equal(t, "employment", got.DomainKey)
}

func TestClassifyEmploymentExample(t *testing.T) {
	kb := legal.Default()

	got := kb.Classify("My employer terminated me without notice and has not paid my last two months salary.")
	require.Equal(t, "employment", got.DomainKey)
	assert.Equal(t, legal.UrgencyHigh, got.Category.Urgency)
	assert.NotEmpty(t, got.Category.Laws)
}

func TestMatchedKeywords(t *testing.T) {
	kb := legal.Default()

	assert.Equal(t, []string{"salary", "employer"}, kb.MatchedKeywords("employment", "Employer kept my salary"))
	assert.Nil(t, kb.MatchedKeywords("unknown", "Employer kept my salary"))
}

func TestLocalizedDomainName(t *testing.T) {
	assert.Equal(t, "परिवार", legal.LocalizedDomainName("hi", "family"))
	assert.Equal(t, "சொத்து", legal.LocalizedDomainName("ta", "property"))
	assert.Equal(t, "family", legal.LocalizedDomainName("fr", "family"))
	assert.Equal(t, "tax", legal.LocalizedDomainName("hi", "tax"))
}
