package handlers

import (
	"github.com/jackc/pgx/v5"
)

// SimpleRow is a pgx.Row backed by a scan func, used by handler tests that
// fake the SQL layer.
type SimpleRow struct {
	scan func(dest ...any) error
}

func NewSimpleRow(scanner func(dest ...any) error) SimpleRow {
	return SimpleRow{scan: scanner}
}

func (r SimpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}
