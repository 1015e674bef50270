package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bryanwahyu/legal-triage/internal/application"
	"github.com/bryanwahyu/legal-triage/internal/domain/ai"
)

// DefaultQuestion is asked when only a document is supplied.
const DefaultQuestion = "Please provide a legal analysis of this document and explain the key legal aspects in simple terms."

const (
	RealDisclaimer = "This is AI-generated legal information, not professional legal advice. Please consult a qualified lawyer for specific legal matters."
	DemoDisclaimer = "This is AI-generated legal information for educational purposes, not professional legal advice. Please consult a qualified lawyer for specific legal matters."
)

// ErrEmptyRequest means neither a question nor a document was given.
var ErrEmptyRequest = errors.New("please provide either a question or upload a document")

type AskCommand struct {
	Question     string
	DocumentText string
}

type Answer struct {
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	RelatedLaws []string  `json:"relatedLaws"`
	Disclaimer  string    `json:"disclaimer"`
	Mode        string    `json:"mode"`
	Timestamp   time.Time `json:"timestamp"`
	// Fallback is set when the configured client failed and a demo answer was used.
	Fallback bool `json:"-"`
}

type Service struct {
	// Client is optional; nil serves demo answers only.
	Client ai.Client
	// Demo answers without a provider and must not fail.
	Demo  ai.Client
	Clock application.Clock
	Log   zerolog.Logger

	// Timeout bounds one client call; zero means no extra bound.
	Timeout time.Duration
}

func NewService(client, demo ai.Client, clock application.Clock, log zerolog.Logger) *Service {
	return &Service{Client: client, Demo: demo, Clock: clock, Log: log}
}

// Enabled reports whether a real AI client is configured.
func (s *Service) Enabled() bool { return s.Client != nil }

// Ask answers a question, falling back to the canned demo answer when the
// configured client fails. Only a cancelled or expired ctx is returned as an
// error, besides ErrEmptyRequest.
func (s *Service) Ask(ctx context.Context, cmd AskCommand) (Answer, error) {
	question := strings.TrimSpace(cmd.Question)
	document := strings.TrimSpace(cmd.DocumentText)
	if question == "" && document == "" {
		return Answer{}, ErrEmptyRequest
	}
	if question == "" {
		question = DefaultQuestion
	}

	var (
		reply    ai.Reply
		err      error
		fallback bool
	)
	if s.Client != nil {
		reply, err = s.analyze(ctx, question, document)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Answer{}, ctxErr
			}
			ev := s.Log.Warn().Err(err)
			if errors.Is(err, ai.ErrQuotaExceeded) {
				ev = ev.Bool("quota", true)
			}
			ev.Msg("ai request failed, using demo answer")
			fallback = true
		}
	}
	if s.Client == nil || fallback {
		if reply, err = s.Demo.Analyze(ctx, question, document); err != nil {
			return Answer{}, err
		}
	}

	disclaimer := RealDisclaimer
	if reply.Demo {
		disclaimer = DemoDisclaimer
	}
	laws := reply.Laws
	if laws == nil {
		laws = []string{}
	}
	return Answer{
		Question:    question,
		Answer:      reply.Text,
		RelatedLaws: laws,
		Disclaimer:  disclaimer,
		Mode:        reply.Mode,
		Timestamp:   s.Clock.Now(),
		Fallback:    fallback,
	}, nil
}

func (s *Service) analyze(ctx context.Context, question, document string) (ai.Reply, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	return s.Client.Analyze(ctx, question, document)
}
