package triage_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/legal-triage/internal/application"
	"github.com/bryanwahyu/legal-triage/internal/application/triage"
	"github.com/bryanwahyu/legal-triage/internal/domain/archive"
	"github.com/bryanwahyu/legal-triage/internal/domain/feedback"
	"github.com/bryanwahyu/legal-triage/internal/domain/jurisdiction"
	"github.com/bryanwahyu/legal-triage/internal/domain/legal"
)

type memArchive struct {
	mu      sync.Mutex
	records []*archive.Record
	err     error
}

func (m *memArchive) Save(_ context.Context, r *archive.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, r)
	return nil
}

func (m *memArchive) Latest(_ context.Context, limit int) ([]*archive.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*archive.Record
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

var now = time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)

func newService(repo archive.Repository) *triage.Service {
	clock := application.FixedClock(now)
	return &triage.Service{
		Knowledge: legal.Default(),
		Index:     jurisdiction.Default(),
		Ledger:    feedback.NewLedger(feedback.DefaultCapacity, clock),
		Clock:     clock,
		Archive:   repo,
		Log:       zerolog.Nop(),
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	svc := newService(nil)

	res := svc.Analyze(context.Background(), triage.AnalyzeCommand{
		Description: "My employer terminated me without notice and has not paid my last two months salary.",
		Location:    "Mumbai, Maharashtra",
		Profession:  "employee",
	})

	assert.Equal(t, "employment", res.Analysis.Domain)
	assert.Equal(t, legal.UrgencyHigh, res.Analysis.Urgency)
	assert.Equal(t, []string{"salary", "employer"}, res.Analysis.MatchedKeywords)
	assert.True(t, res.Jurisdiction.Detected)
	assert.Equal(t, "Mumbai", res.Jurisdiction.City)
	assert.Equal(t, "Maharashtra", res.Jurisdiction.State)
	assert.NotEmpty(t, res.ApplicableLaws)
	assert.NotEmpty(t, res.RecommendedSteps)
	assert.NotEmpty(t, res.RequiredDocuments)
	assert.Equal(t, "Legal aid services are available if you cannot afford a lawyer.", res.ProfessionTip)
	assert.Equal(t, now, res.GeneratedAt)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	svc := newService(nil)
	cmd := triage.AnalyzeCommand{Description: "online fraud with a refund that never came", Location: "Delhi"}

	first := svc.Analyze(context.Background(), cmd)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, svc.Analyze(context.Background(), cmd))
	}
}

func TestAnalyzeArchivesWithoutDescription(t *testing.T) {
	repo := &memArchive{}
	svc := newService(repo)

	svc.Analyze(context.Background(), triage.AnalyzeCommand{
		Description: "I received a traffic challan for driving",
		Location:    "Kolkata",
		Profession:  "student",
	})
	svc.Analyze(context.Background(), triage.AnalyzeCommand{Description: "no keywords are present here"})

	recs, err := svc.RecentAnalyses(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, triage.GeneralDomain, recs[0].Domain)
	assert.Equal(t, "general", recs[0].Category)
	assert.Empty(t, recs[0].ProfessionKind)

	assert.Equal(t, "traffic", recs[1].Domain)
	assert.Equal(t, "traffic_challan", recs[1].Category)
	assert.Equal(t, "LOW", recs[1].Urgency)
	assert.Equal(t, "Kolkata", recs[1].City)
	assert.Equal(t, "West Bengal", recs[1].State)
	assert.Equal(t, "student", recs[1].ProfessionKind)
	assert.NotEmpty(t, recs[1].ID)
	assert.Equal(t, now, recs[1].CreatedAt)
}

func TestAnalyzeIgnoresArchiveFailure(t *testing.T) {
	svc := newService(&memArchive{err: errors.New("db down")})

	res := svc.Analyze(context.Background(), triage.AnalyzeCommand{Description: "my landlord kept the deposit"})
	assert.Equal(t, "property", res.Analysis.Domain)
}

func TestRecentAnalysesWithoutArchive(t *testing.T) {
	svc := newService(nil)

	_, err := svc.RecentAnalyses(context.Background(), 5)
	assert.ErrorIs(t, err, archive.ErrNotConfigured)
}

func TestFeedbackThroughService(t *testing.T) {
	svc := newService(nil)

	assert.Equal(t, feedback.Stats{}, svc.FeedbackStats())

	_, err := svc.SubmitFeedback(6, "", true)
	assert.ErrorIs(t, err, feedback.ErrInvalidRating)

	e, err := svc.SubmitFeedback(5, "clear answer", true)
	require.NoError(t, err)
	assert.Equal(t, now, e.Timestamp)

	assert.Equal(t, feedback.Stats{TotalFeedback: 1, AverageRating: 5, HelpfulCount: 1}, svc.FeedbackStats())
}

func TestCategories(t *testing.T) {
	svc := newService(nil)

	cats := svc.Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, triage.Category{ID: "employment", Name: "Employment", NameHindi: "रोजगार", NameTamil: "வேலைவாய்ப்பு"}, cats[0])
	assert.Equal(t, "criminal", cats[5].ID)
}
