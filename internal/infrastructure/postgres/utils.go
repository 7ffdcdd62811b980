package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de violación de constraint único (users.email).
const codeUniqueViolation = "23505"

// isUniqueViolation indica si el error del servidor es un duplicado de clave única.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
