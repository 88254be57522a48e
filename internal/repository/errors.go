package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation           = "23505"
	PgErrCheckViolation            = "23514"
	PgErrInvalidTextRepresentation = "22P02"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsNotFound: строки нет, либо ключ даже не разобрался как UUID.
// Для вызывающего оба случая значат "такой заявки нет".
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || IsPgErrorWithCode(err, PgErrInvalidTextRepresentation)
}
