package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/bryanwahyu/legal-triage/internal/application/assistant"
	"github.com/bryanwahyu/legal-triage/internal/application/triage"
	"github.com/bryanwahyu/legal-triage/internal/domain/archive"
	"github.com/bryanwahyu/legal-triage/internal/domain/feedback"
	"github.com/bryanwahyu/legal-triage/internal/infra/ai/prompt"
	"github.com/bryanwahyu/legal-triage/internal/middleware"
)

const ServiceName = "India Legal Assistant API"

// Options configures the surrounding middleware; the zero value is usable.
type Options struct {
	CORSOrigins    []string
	AdminKeys      []string
	RateLimiter    *middleware.RateLimiter
	HealthCheckers map[string]middleware.HealthChecker
	Log            zerolog.Logger
	// Debug exposes internal error text in 500 responses.
	Debug          bool
}

type Router struct {
	triageSvc    *triage.Service
	assistantSvc *assistant.Service
	validate     *validator.Validate
	log          zerolog.Logger
	debug        bool
}

var availableEndpoints = []string{
	"GET /api/health",
	"POST /api/analyze",
	"GET /api/categories",
	"POST /api/feedback",
	"GET /api/stats",
	"POST /api/v1/legal/analyze",
	"GET /api/v1/legal/examples",
}

func NewRouter(triageSvc *triage.Service, assistantSvc *assistant.Service, opts Options) http.Handler {
	r := &Router{
		triageSvc:    triageSvc,
		assistantSvc: assistantSvc,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		log:          opts.Log,
		debug:        opts.Debug,
	}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Logging(opts.Log))
	mux.Use(chimw.Recoverer)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.SecurityHeaders)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-API-Key", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	mux.Get("/healthz", middleware.HealthHandler(ServiceName, opts.HealthCheckers))
	mux.Get("/readyz", middleware.ReadinessHandler)
	mux.Get("/livez", middleware.LivenessHandler)

	mux.Route("/api", func(rt chi.Router) {
		if opts.RateLimiter != nil {
			rt.Use(middleware.RateLimitMiddleware(opts.RateLimiter))
		}
		rt.Get("/health", r.wrap(r.handleHealth))
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/categories", r.wrap(r.handleCategories))
		rt.Post("/feedback", r.wrap(r.handleFeedback))
		rt.Get("/stats", r.wrap(r.handleStats))

		rt.Route("/v1/legal", func(rt chi.Router) {
			rt.Post("/analyze", r.wrap(r.handleLegalAnalyze))
			rt.Get("/examples", r.wrap(r.handleExamples))
		})
	})

	// admin routes exist only when keys are configured
	if keys := middleware.AdminKeys(opts.AdminKeys); len(keys) > 0 {
		mux.Group(func(rt chi.Router) {
			rt.Use(middleware.APIKeyAuth(keys))
			rt.Get("/metrics", middleware.MetricsHandler)
			rt.Get("/api/admin/archive", r.wrap(r.handleArchive))
			rt.Get("/api/admin/feedback", r.wrap(r.handleFeedbackEntries))
		})
	}

	mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		_ = writeJSON(w, http.StatusNotFound, map[string]any{
			"error":              "Endpoint not found",
			"availableEndpoints": availableEndpoints,
		})
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		var reqErr *requestError
		switch {
		case errors.As(err, &reqErr):
			writeError(w, http.StatusBadRequest, reqErr.msg)
		case errors.Is(err, feedback.ErrInvalidRating):
			writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		case errors.Is(err, assistant.ErrEmptyRequest):
			writeError(w, http.StatusBadRequest, "Please provide either a question or upload a document")
		case errors.Is(err, archive.ErrNotConfigured):
			writeError(w, http.StatusNotFound, "archive is not configured")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			writeError(w, http.StatusServiceUnavailable, "request cancelled")
		default:
			r.log.Error().Err(err).
				Str("path", req.URL.Path).
				Str("request_id", middleware.GetRequestID(req.Context())).
				Msg("request failed")
			if r.debug {
				_ = writeJSON(w, http.StatusInternalServerError, map[string]any{
					"success": false,
					"error":   "Internal server error",
					"message": err.Error(),
				})
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// GET /api/health
func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": r.triageSvc.Clock.Now(),
		"service":   ServiceName,
		"aiEnabled": r.assistantSvc.Enabled(),
	})
}

type analyzeRequest struct {
	Description string `json:"description" validate:"min=10"`
	Location    string `json:"location" validate:"max=200"`
	Profession  string `json:"profession" validate:"max=100"`
	Language    string `json:"language"`
}

// POST /api/analyze
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body analyzeRequest
	if err := decodeJSON(w, req, &body); err != nil {
		return err
	}
	body.Description = middleware.SanitizeString(body.Description)
	body.Location = middleware.SanitizeString(body.Location)
	body.Profession = middleware.SanitizeString(body.Profession)
	if err := r.validate.Struct(&body); err != nil {
		return analyzeValidationError(err)
	}

	res := r.triageSvc.Analyze(req.Context(), triage.AnalyzeCommand{
		Description: body.Description,
		Location:    body.Location,
		Profession:  body.Profession,
	})
	middleware.IncrementAnalyses(res.Analysis.Domain == triage.GeneralDomain)

	return writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
		triage.Result
	}{true, res})
}

func analyzeValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		switch verrs[0].Field() {
		case "Location":
			return badRequest("Location must be at most 200 characters")
		case "Profession":
			return badRequest("Profession must be at most 100 characters")
		}
	}
	return badRequest("Please provide a detailed description (at least 10 characters)")
}

// GET /api/categories
func (r *Router) handleCategories(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": r.triageSvc.Categories(),
	})
}

type feedbackRequest struct {
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	Comment    string `json:"comment" validate:"max=2000"`
	WasHelpful bool   `json:"wasHelpful"`
}

// POST /api/feedback
func (r *Router) handleFeedback(w http.ResponseWriter, req *http.Request) error {
	var body feedbackRequest
	if err := decodeJSON(w, req, &body); err != nil {
		return err
	}
	body.Comment = middleware.SanitizeString(body.Comment)
	if err := r.validate.Struct(&body); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].Field() == "Rating" {
			return feedback.ErrInvalidRating
		}
		return badRequest("Comment is too long")
	}

	entry, err := r.triageSvc.SubmitFeedback(body.Rating, body.Comment, body.WasHelpful)
	if err != nil {
		return err
	}
	middleware.IncrementFeedback()

	return writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Thank you for your feedback!",
		"feedbackId": entry.ID,
	})
}

// GET /api/stats
func (r *Router) handleStats(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats": struct {
			feedback.Stats
			LastUpdated time.Time `json:"lastUpdated"`
		}{r.triageSvc.FeedbackStats(), r.triageSvc.Clock.Now()},
	})
}

const extractedTextRunes = 500

// POST /api/v1/legal/analyze
// Body: {"question": "...", "documentText": "..."}
func (r *Router) handleLegalAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Question     string `json:"question"`
		DocumentText string `json:"documentText"`
	}
	if err := decodeJSON(w, req, &body); err != nil {
		return err
	}

	ans, err := r.assistantSvc.Ask(req.Context(), assistant.AskCommand{
		Question:     middleware.SanitizeString(body.Question),
		DocumentText: middleware.SanitizeString(body.DocumentText),
	})
	if err != nil {
		return err
	}
	middleware.IncrementAssistant(ans.Fallback)

	var extracted *string
	if doc := middleware.SanitizeString(body.DocumentText); doc != "" {
		s := prompt.Truncate(doc, extractedTextRunes) + "..."
		extracted = &s
	}

	return writeJSON(w, http.StatusOK, struct {
		Success       bool    `json:"success"`
		ExtractedText *string `json:"extractedText"`
		assistant.Answer
	}{true, extracted, ans})
}

// GET /api/v1/legal/examples
func (r *Router) handleExamples(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"examples": assistant.Examples(),
	})
}

// GET /api/admin/archive?limit=
func (r *Router) handleArchive(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	recs, err := r.triageSvc.RecentAnalyses(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	if recs == nil {
		recs = []*archive.Record{}
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"analyses": recs,
	})
}

// GET /api/admin/feedback
func (r *Router) handleFeedbackEntries(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"feedback": r.triageSvc.FeedbackEntries(),
	})
}
