package triage

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bryanwahyu/legal-triage/internal/application"
	"github.com/bryanwahyu/legal-triage/internal/domain/archive"
	"github.com/bryanwahyu/legal-triage/internal/domain/feedback"
	"github.com/bryanwahyu/legal-triage/internal/domain/jurisdiction"
	"github.com/bryanwahyu/legal-triage/internal/domain/legal"
)

const archiveTimeout = 2 * time.Second

// Service implements the triage use-cases. It is safe for concurrent use:
// the knowledge base and index are immutable and the ledger locks itself.
type Service struct {
	Knowledge *legal.KnowledgeBase
	Index     *jurisdiction.Index
	Ledger    *feedback.Ledger
	Clock     application.Clock

	// Archive is optional; nil disables archiving.
	Archive archive.Repository
	Log     zerolog.Logger
}

// AnalyzeCommand is the input of Analyze. The caller guarantees that the
// trimmed description is at least 10 characters long.
type AnalyzeCommand struct {
	Description string
	Location    string
	Profession  string
}

// Category is one entry of the categories listing.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NameHindi string `json:"nameHindi"`
	NameTamil string `json:"nameTamil"`
}

// Analyze classifies the description, resolves the location and composes the
// result. It never fails; archiving problems are only logged.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) Result {
	c := s.Knowledge.Classify(cmd.Description)
	j := s.Index.Resolve(cmd.Location)

	res := Compose(c, j, cmd.Profession, s.Clock.Now())
	if !c.IsDefault() {
		res.Analysis.MatchedKeywords = s.Knowledge.MatchedKeywords(c.DomainKey, cmd.Description)
	}

	if s.Archive != nil {
		s.archive(ctx, c, j, cmd.Profession, res.GeneratedAt)
	}
	return res
}

func (s *Service) archive(ctx context.Context, c legal.Classification, j jurisdiction.Record, profession string, at time.Time) {
	domain := c.DomainKey
	if c.IsDefault() {
		domain = GeneralDomain
	}
	rec := &archive.Record{
		ID:             archive.RecordID(uuid.New().String()),
		Domain:         domain,
		Category:       c.Category.Key,
		Urgency:        string(c.Category.Urgency),
		State:          j.State,
		City:           j.City,
		ProfessionKind: string(ClassifyProfession(profession)),
		CreatedAt:      at,
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()
	if err := s.Archive.Save(ctx, rec); err != nil {
		s.Log.Warn().Err(err).Str("archive_id", string(rec.ID)).Msg("archive save failed")
	}
}

// RecentAnalyses lists archived analyses, newest first.
func (s *Service) RecentAnalyses(ctx context.Context, limit int) ([]*archive.Record, error) {
	if s.Archive == nil {
		return nil, archive.ErrNotConfigured
	}
	return s.Archive.Latest(ctx, limit)
}

// SubmitFeedback stores one feedback entry.
func (s *Service) SubmitFeedback(rating int, comment string, wasHelpful bool) (feedback.Entry, error) {
	return s.Ledger.Submit(rating, comment, wasHelpful)
}

// FeedbackStats returns aggregate feedback statistics.
func (s *Service) FeedbackStats() feedback.Stats {
	return s.Ledger.Stats()
}

// FeedbackEntries lists retained feedback oldest first.
func (s *Service) FeedbackEntries() []feedback.Entry {
	return s.Ledger.Entries()
}

// Categories lists the knowledge-base domains with localized names.
func (s *Service) Categories() []Category {
	domains := s.Knowledge.Domains()
	out := make([]Category, 0, len(domains))
	for _, d := range domains {
		out = append(out, Category{
			ID:        d.Key,
			Name:      strings.ToUpper(d.Key[:1]) + d.Key[1:],
			NameHindi: legal.LocalizedDomainName("hi", d.Key),
			NameTamil: legal.LocalizedDomainName("ta", d.Key),
		})
	}
	return out
}
