package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bryanwahyu/legal-triage/internal/domain/archive"
)

type ArchiveRepository struct {
	db *sql.DB
}

func NewArchiveRepository(db *sql.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// Migrate creates the archive table when missing.
func (r *ArchiveRepository) Migrate(ctx context.Context) error {
	stmts := []string{`
CREATE TABLE IF NOT EXISTS legal_analyses (
  id              TEXT        PRIMARY KEY,
  domain          TEXT        NOT NULL,
  category        TEXT        NOT NULL,
  urgency         TEXT        NOT NULL,
  state           TEXT,
  city            TEXT,
  profession_kind TEXT,
  created_at      TIMESTAMPTZ NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS idx_legal_analyses_created ON legal_analyses (created_at DESC);`,
	}
	for _, q := range stmts {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate legal_analyses: %w", err)
		}
	}
	return nil
}

// Save inserts or updates an archive record
func (r *ArchiveRepository) Save(ctx context.Context, rec *archive.Record) error {
	const q = `
INSERT INTO legal_analyses
  (id, domain, category, urgency, state, city, profession_kind, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (id) DO UPDATE SET
  domain=EXCLUDED.domain,
  category=EXCLUDED.category,
  urgency=EXCLUDED.urgency;
`
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, q,
		string(rec.ID), rec.Domain, rec.Category, rec.Urgency,
		nullIfBlank(rec.State), nullIfBlank(rec.City), nullIfBlank(rec.ProfessionKind),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("save archive record %s: %w", rec.ID, err)
	}
	return nil
}

// Latest returns up to limit records ordered by created_at desc
func (r *ArchiveRepository) Latest(ctx context.Context, limit int) ([]*archive.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, domain, category, urgency, state, city, profession_kind, created_at
FROM legal_analyses
ORDER BY created_at DESC, id DESC
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*archive.Record
	for rows.Next() {
		var (
			rec                     archive.Record
			id                      string
			state, city, profession sql.NullString
		)
		if err := rows.Scan(&id, &rec.Domain, &rec.Category, &rec.Urgency, &state, &city, &profession, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.ID = archive.RecordID(id)
		rec.State, rec.City, rec.ProfessionKind = state.String, city.String, profession.String
		rec.CreatedAt = rec.CreatedAt.UTC()
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// nullIfBlank maps empty/whitespace to SQL NULL
func nullIfBlank(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
