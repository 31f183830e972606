package dto

import (
	"strings"
	"time"
)

// RegisterRequest entrada del auto-registro. El rol no es elegible por el cliente.
type RegisterRequest struct {
	Nombre       string  `json:"nombre"`
	Apellidos    string  `json:"apellidos"`
	Email        string  `json:"email"`
	FechaNac     string  `json:"fechaNac"` // YYYY-MM-DD o RFC3339
	NumeroCarnet Carnet  `json:"numeroCarnet"`
	Password     string  `json:"password"`
	FotoCI1      *string `json:"fotoCI1,omitempty"` // URL o data URL base64
	FotoCI2      *string `json:"fotoCI2,omitempty"`
}

// UsuarioResponse proyección pública de un usuario (nunca incluye el hash).
type UsuarioResponse struct {
	ID              string    `json:"id"`
	Nombre          string    `json:"nombre"`
	Apellidos       string    `json:"apellidos"`
	Email           string    `json:"email"`
	FechaNacimiento string    `json:"fechaNacimiento"`
	NumeroCarnet    string    `json:"numeroCarnet"`
	Rol             string    `json:"rol"`
	Activo          bool      `json:"activo"`
	FotoCI1         *string   `json:"fotoCI1,omitempty"`
	FotoCI2         *string   `json:"fotoCI2,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LoginRequest acepta el carnet o el email como identificador.
type LoginRequest struct {
	NumeroCarnet Carnet `json:"numeroCarnet"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}

// Identificador devuelve numeroCarnet si viene, si no el email.
func (r LoginRequest) Identificador() string {
	if s := r.NumeroCarnet.String(); s != "" {
		return s
	}
	return strings.TrimSpace(r.Email)
}

// LoginResponse token firmado y usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
