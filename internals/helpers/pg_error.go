package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MapPGError memetakan error Postgres (pgx / lib/pq) ke status + pesan.
// ok=false kalau bukan error PG.
func MapPGError(err error) (int, string, bool) {
	code := ""
	var pgxErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgxErr):
		code = pgxErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	default:
		return 0, "", false
	}

	switch code {
	case "23505":
		return http.StatusConflict, "Duplicate data (unique violation).", true
	case "23503":
		return http.StatusBadRequest, "Referenced data not found (FK violation).", true
	case "23514":
		return http.StatusUnprocessableEntity, "Value out of allowed range (check violation).", true
	default:
		return http.StatusInternalServerError, "Database error", true
	}
}

// IsUniqueViolation true untuk 23505 dari driver manapun (atau ErrDuplicatedKey hasil TranslateError).
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	status, _, ok := MapPGError(err)
	return ok && status == http.StatusConflict
}
