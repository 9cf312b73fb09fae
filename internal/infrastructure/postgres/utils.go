package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que el dominio distingue.
const codeUniqueViolation = "23505"

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation detecta el choque con una constraint única: la pareja
// (product_id, size) de las tallas o el email de los usuarios.
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}
