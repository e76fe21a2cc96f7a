package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// IsNoRows checks if the error means the query matched no rows.
// Repositories use this to translate pgx.ErrNoRows into domain not-found errors.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
