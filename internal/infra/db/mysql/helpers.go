package mysql

import (
	"database/sql"
	"strings"
)

// nullIfBlank maps empty/whitespace to SQL NULL
func nullIfBlank(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
