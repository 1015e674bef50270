package archive

import "context"

// Repository port for persisting and querying archived analyses
type Repository interface {
	Save(ctx context.Context, r *Record) error
	// Latest returns up to limit records, newest first.
	Latest(ctx context.Context, limit int) ([]*Record, error)
}
