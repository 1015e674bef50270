package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/legal-triage/internal/application"
	"github.com/bryanwahyu/legal-triage/internal/application/assistant"
	"github.com/bryanwahyu/legal-triage/internal/application/triage"
	"github.com/bryanwahyu/legal-triage/internal/domain/ai"
	"github.com/bryanwahyu/legal-triage/internal/domain/archive"
	"github.com/bryanwahyu/legal-triage/internal/domain/feedback"
	"github.com/bryanwahyu/legal-triage/internal/domain/jurisdiction"
	"github.com/bryanwahyu/legal-triage/internal/domain/legal"
	"github.com/bryanwahyu/legal-triage/internal/infra/ai/demo"
	"github.com/bryanwahyu/legal-triage/internal/infra/httpserver"
	"github.com/bryanwahyu/legal-triage/internal/middleware"
)

var now = time.Date(2026, 10, 17, 11, 0, 0, 0, time.UTC)

type memArchive struct {
	mu      sync.Mutex
	records []*archive.Record
	err     error
}

func (m *memArchive) Save(_ context.Context, r *archive.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

func (m *memArchive) Latest(_ context.Context, limit int) ([]*archive.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []*archive.Record
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

type failingClient struct{}

func (failingClient) Analyze(context.Context, string, string) (ai.Reply, error) {
	return ai.Reply{}, ai.ErrQuotaExceeded
}

type setup struct {
	repo   archive.Repository
	client ai.Client
	opts   httpserver.Options
}

func newHandler(s setup) http.Handler {
	clock := application.FixedClock(now)
	tr := &triage.Service{
		Knowledge: legal.Default(),
		Index:     jurisdiction.Default(),
		Ledger:    feedback.NewLedger(feedback.DefaultCapacity, clock),
		Clock:     clock,
		Archive:   s.repo,
		Log:       zerolog.Nop(),
	}
	as := assistant.NewService(s.client, demo.NewClient(), clock, zerolog.Nop())
	s.opts.Log = zerolog.Nop()
	return httpserver.NewRouter(tr, as, s.opts)
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestHealth(t *testing.T) {
	h := newHandler(setup{})

	rec, body := do(t, h, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, httpserver.ServiceName, body["service"])
	assert.Equal(t, false, body["aiEnabled"])
	assert.Equal(t, "2026-10-17T11:00:00Z", body["timestamp"])
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec, _ = do(t, h, http.MethodGet, "/livez", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyze(t *testing.T) {
	h := newHandler(setup{})

	rec, body := do(t, h, http.MethodPost, "/api/analyze", `{
		"description": "My employer terminated me without notice and has not paid my last two months salary.",
		"location": "Mumbai, Maharashtra",
		"profession": "employee"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, true, body["success"])
	analysis := body["analysis"].(map[string]any)
	assert.Equal(t, "employment", analysis["domain"])
	assert.Equal(t, "HIGH", analysis["urgency"])

	j := body["jurisdiction"].(map[string]any)
	assert.Equal(t, true, j["detected"])
	assert.Equal(t, "Mumbai", j["city"])
	assert.Equal(t, "Maharashtra", j["state"])

	assert.NotEmpty(t, body["applicableLaws"])
	assert.NotEmpty(t, body["recommendedSteps"])
	assert.NotEmpty(t, body["requiredDocuments"])
	assert.Equal(t, triage.Disclaimer, body["disclaimer"])
	assert.Equal(t, "2026-10-17T11:00:00Z", body["generatedAt"])
}

func TestAnalyzeGeneralCategory(t *testing.T) {
	h := newHandler(setup{})

	rec, body := do(t, h, http.MethodPost, "/api/analyze", `{"description": "I need some help with a problem"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	analysis := body["analysis"].(map[string]any)
	assert.Equal(t, "general", analysis["domain"])
	assert.Equal(t, "General Legal Query", analysis["category"])
	j := body["jurisdiction"].(map[string]any)
	assert.Equal(t, false, j["detected"])
	assert.Equal(t, jurisdiction.MessageNoLocation, j["message"])
}

func TestAnalyzeRejectsShortDescription(t *testing.T) {
	h := newHandler(setup{})

	for _, payload := range []string{
		`{"description": "too short"}`,
		`{"description": "   padded   "}`,
		`{}`,
		`not json`,
		``,
	} {
		rec, body := do(t, h, http.MethodPost, "/api/analyze", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.Equal(t, false, body["success"], payload)
		assert.NotEmpty(t, body["error"], payload)
	}
}

func TestAnalyzeFieldSpecificErrors(t *testing.T) {
	h := newHandler(setup{})
	desc := "my landlord refuses to return the security deposit"

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "location too long",
			payload: fmt.Sprintf(`{"description": %q, "location": %q}`, desc, strings.Repeat("x", 201)),
			want:    "Location must be at most 200 characters",
		},
		{
			name:    "profession too long",
			payload: fmt.Sprintf(`{"description": %q, "profession": %q}`, desc, strings.Repeat("x", 101)),
			want:    "Profession must be at most 100 characters",
		},
		{
			name:    "description too short",
			payload: `{"description": "short"}`,
			want:    "Please provide a detailed description (at least 10 characters)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, h, http.MethodPost, "/api/analyze", tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, body["error"])
		})
	}
}

func TestCategories(t *testing.T) {
	rec, body := do(t, newHandler(setup{}), http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	cats := body["categories"].([]any)
	require.Len(t, cats, 6)
	first := cats[0].(map[string]any)
	assert.Equal(t, "employment", first["id"])
	assert.Equal(t, "Employment", first["name"])
	assert.Equal(t, "रोजगार", first["nameHindi"])
}

func TestFeedbackAndStats(t *testing.T) {
	h := newHandler(setup{})

	rec, body := do(t, h, http.MethodPost, "/api/feedback", `{"rating": 6}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Rating must be between 1 and 5", body["error"])

	rec, _ = do(t, h, http.MethodPost, "/api/feedback", `{"comment": "no rating"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, payload := range []string{
		`{"rating": 5, "wasHelpful": true}`,
		`{"rating": 4, "comment": "good", "wasHelpful": true}`,
		`{"rating": 4}`,
	} {
		rec, body = do(t, h, http.MethodPost, "/api/feedback", payload)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Thank you for your feedback!", body["message"])
		assert.NotEmpty(t, body["feedbackId"])
	}

	rec, body = do(t, h, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := body["stats"].(map[string]any)
	assert.EqualValues(t, 3, stats["totalFeedback"])
	assert.EqualValues(t, 4.3, stats["averageRating"])
	assert.EqualValues(t, 2, stats["helpfulResponses"])
	assert.Equal(t, "2026-10-17T11:00:00Z", stats["lastUpdated"])
}

func TestLegalAnalyzeDemo(t *testing.T) {
	h := newHandler(setup{})

	rec, body := do(t, h, http.MethodPost, "/api/v1/legal/analyze", `{"question": "How to file a consumer complaint?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "How to file a consumer complaint?", body["question"])
	assert.Nil(t, body["extractedText"])
	assert.Contains(t, body["answer"], "Consumer Protection Act")
	assert.Equal(t, "Mock AI (Demo Mode)", body["mode"])
	assert.Equal(t, assistant.DemoDisclaimer, body["disclaimer"])
	assert.Len(t, body["relatedLaws"], 3)
}

func TestLegalAnalyzeDocumentOnly(t *testing.T) {
	h := newHandler(setup{})
	doc := strings.Repeat("a", 600)

	rec, body := do(t, h, http.MethodPost, "/api/v1/legal/analyze", `{"documentText": "`+doc+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, assistant.DefaultQuestion, body["question"])
	assert.Equal(t, strings.Repeat("a", 500)+"...", body["extractedText"])
	assert.Contains(t, body["answer"], "I've reviewed the document you provided.")
}

func TestLegalAnalyzeRequiresInput(t *testing.T) {
	rec, body := do(t, newHandler(setup{}), http.MethodPost, "/api/v1/legal/analyze", `{"question": "  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please provide either a question or upload a document", body["error"])
}

func TestLegalAnalyzeFallsBackWhenProviderFails(t *testing.T) {
	h := newHandler(setup{client: failingClient{}})

	_, health := do(t, h, http.MethodGet, "/api/health", "")
	assert.Equal(t, true, health["aiEnabled"])

	// quota errors fall back too, never 429
	rec, body := do(t, h, http.MethodPost, "/api/v1/legal/analyze", `{"question": "my job was terminated"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mock AI (Demo Mode)", body["mode"])
	assert.Equal(t, true, body["success"])
}

func TestExamples(t *testing.T) {
	rec, body := do(t, newHandler(setup{}), http.MethodGet, "/api/v1/legal/examples", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["examples"], 5)
}

func TestNotFound(t *testing.T) {
	rec, body := do(t, newHandler(setup{}), http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Endpoint not found", body["error"])
	assert.Contains(t, body["availableEndpoints"], "POST /api/analyze")
}

func TestAdminRoutes(t *testing.T) {
	repo := &memArchive{}
	h := newHandler(setup{repo: repo, opts: httpserver.Options{AdminKeys: []string{"adm"}}})

	rec, _ := do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, body := do(t, h, http.MethodGet, "/metrics", "", "Authorization", "Bearer adm")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "analyses_total")

	do(t, h, http.MethodPost, "/api/analyze", `{"description": "landlord refuses to return my security deposit", "location": "Pune"}`)

	rec, body = do(t, h, http.MethodGet, "/api/admin/archive?limit=5", "", "X-API-Key", "adm")
	require.Equal(t, http.StatusOK, rec.Code)
	recs := body["analyses"].([]any)
	require.Len(t, recs, 1)
	first := recs[0].(map[string]any)
	assert.Equal(t, "property", first["domain"])
	assert.Equal(t, "Pune", first["city"])
	assert.NotContains(t, first, "description")
}

func TestAdminFeedback(t *testing.T) {
	h := newHandler(setup{opts: httpserver.Options{AdminKeys: []string{"adm"}}})

	rec, _ := do(t, h, http.MethodGet, "/api/admin/feedback", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, body := do(t, h, http.MethodGet, "/api/admin/feedback", "", "X-API-Key", "adm")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["feedback"])

	do(t, h, http.MethodPost, "/api/feedback", `{"rating": 4, "comment": "first", "wasHelpful": true}`)
	do(t, h, http.MethodPost, "/api/feedback", `{"rating": 2, "comment": "second"}`)

	rec, body = do(t, h, http.MethodGet, "/api/admin/feedback", "", "X-API-Key", "adm")
	require.Equal(t, http.StatusOK, rec.Code)
	entries := body["feedback"].([]any)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].(map[string]any)["comment"])
	assert.Equal(t, "second", entries[1].(map[string]any)["comment"])
}

func TestInternalErrorDetails(t *testing.T) {
	repo := &memArchive{err: errors.New("archive offline")}

	h := newHandler(setup{repo: repo, opts: httpserver.Options{AdminKeys: []string{"adm"}}})
	rec, body := do(t, h, http.MethodGet, "/api/admin/archive", "", "X-API-Key", "adm")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, body, "message")

	h = newHandler(setup{repo: repo, opts: httpserver.Options{AdminKeys: []string{"adm"}, Debug: true}})
	rec, body = do(t, h, http.MethodGet, "/api/admin/archive", "", "X-API-Key", "adm")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, "archive offline", body["message"])
}

func TestAdminRoutesAbsentWithoutKeys(t *testing.T) {
	rec, _ := do(t, newHandler(setup{}), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArchiveNotConfigured(t *testing.T) {
	h := newHandler(setup{opts: httpserver.Options{AdminKeys: []string{"adm"}}})

	rec, _ := do(t, h, http.MethodGet, "/api/admin/archive", "", "Authorization", "adm")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := newHandler(setup{opts: httpserver.Options{RateLimiter: middleware.NewRateLimiter(0.001, 2)}})

	for i := 0; i < 2; i++ {
		rec, _ := do(t, h, http.MethodGet, "/api/stats", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	rec, _ := do(t, h, http.MethodGet, "/api/stats", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// probes are not limited
	rec, _ = do(t, h, http.MethodGet, "/livez", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitIgnoresForwardedHeaders(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 2)
	h := newHandler(setup{opts: httpserver.Options{RateLimiter: limiter}})

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		ip := fmt.Sprintf("203.0.113.%d", i+1)
		rec, _ := do(t, h, http.MethodGet, "/api/stats", "", "X-Forwarded-For", ip, "X-Real-IP", ip)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{200, 200, 429, 429, 429}, codes)
	assert.Equal(t, 1, limiter.Len())
}
