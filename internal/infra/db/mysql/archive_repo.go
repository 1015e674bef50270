package mysql

import (
	"context"
	"database/sql"
	"fmt"
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
	const q = `
CREATE TABLE IF NOT EXISTS legal_analyses (
  id              VARCHAR(36)  NOT NULL PRIMARY KEY,
  domain          VARCHAR(32)  NOT NULL,
  category        VARCHAR(64)  NOT NULL,
  urgency         VARCHAR(8)   NOT NULL,
  state           VARCHAR(64)  NULL,
  city            VARCHAR(64)  NULL,
  profession_kind VARCHAR(16)  NULL,
  created_at      DATETIME(3)  NOT NULL,
  KEY idx_legal_analyses_created (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`
	if _, err := r.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("migrate legal_analyses: %w", err)
	}
	return nil
}

// Save inserts an archive record
func (r *ArchiveRepository) Save(ctx context.Context, rec *archive.Record) error {
	const q = `
INSERT INTO legal_analyses
  (id, domain, category, urgency, state, city, profession_kind, created_at)
VALUES (?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  domain=VALUES(domain), category=VALUES(category), urgency=VALUES(urgency);
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
LIMIT ?;
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
