package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/hospedaje-lider-api/internal/domain"
)

// Nombres de los constraints de unicidad creados por Migrate.
const (
	constraintEmail  = "usuario_email_key"
	constraintCarnet = "usuario_numero_carnet_key"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// mapUniqueViolation traduce un 23505 al error de dominio según la columna; nil si no es 23505.
func mapUniqueViolation(err error) error {
	if !isUniqueViolation(err) {
		return nil
	}
	var pgErr *pgconn.PgError
	errors.As(err, &pgErr)
	switch {
	case pgErr.ConstraintName == constraintEmail, strings.Contains(pgErr.Detail, "(email)"):
		return domain.ErrDuplicateEmail
	case pgErr.ConstraintName == constraintCarnet, strings.Contains(pgErr.Detail, "(numero_carnet)"):
		return domain.ErrDuplicateCarnet
	default:
		return domain.ErrDuplicate
	}
}
