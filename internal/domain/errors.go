package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrDuplicateEmail     = errors.New("el email ya está registrado")
	ErrDuplicateCarnet    = errors.New("el número de carnet ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrUpstream           = errors.New("error del servicio externo")
)

// ValidationError describe un campo rechazado. errors.Is(err, ErrValidation) es true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsDuplicate indica si err es cualquiera de las violaciones de unicidad.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicateCarnet)
}
