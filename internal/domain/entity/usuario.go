package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdministrador = "administrador"
	RolCliente       = "cliente"
	RolGerente       = "gerente"
)

// RolValido indica si rol es uno de los roles conocidos.
func RolValido(rol string) bool {
	switch rol {
	case RolAdministrador, RolCliente, RolGerente:
		return true
	}
	return false
}

// Usuario representa una fila de la tabla usuario. Email y NumeroCarnet son únicos.
type Usuario struct {
	ID              string
	Nombre          string
	Apellidos       string
	Email           string
	FechaNacimiento time.Time
	NumeroCarnet    string
	PasswordHash    string // bcrypt; nunca sale de la capa de aplicación
	Rol             string
	Activo          bool // activo=false es la única forma de desactivar una cuenta
	FotoCI1         *string
	FotoCI2         *string
	CreatedAt       time.Time
}
