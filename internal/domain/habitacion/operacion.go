// Package habitacion decide a qué sub-recurso del backend se envía una actualización de habitación.
package habitacion

import (
	"github.com/jhoicas/hospedaje-lider-api/internal/domain"
)

// Operacion sub-operación de actualización de una habitación.
type Operacion string

const (
	OperacionActiva   Operacion = "activa"
	OperacionLimpieza Operacion = "limpieza"
	OperacionEstado   Operacion = "estado"
	OperacionDatos    Operacion = "datos" // actualización general sobre el recurso base
)

// CampoOperacion clave del cuerpo que nombra la operación explícitamente.
const CampoOperacion = "operacion"

// prioridad orden usado cuando el cliente no indica la operación.
var prioridad = []Operacion{OperacionActiva, OperacionLimpieza, OperacionEstado}

// ParseOperacion valida una etiqueta recibida en la ruta o en el cuerpo.
func ParseOperacion(s string) (Operacion, bool) {
	switch op := Operacion(s); op {
	case OperacionActiva, OperacionLimpieza, OperacionEstado, OperacionDatos:
		return op, true
	}
	return "", false
}

// Ruta devuelve el path del backend para la habitación id.
func (o Operacion) Ruta(id string) string {
	base := "/habitaciones/" + id
	if o == OperacionDatos {
		return base
	}
	return base + "/" + string(o)
}

// ResolverOperacion elige la operación para body. etiqueta viene de la ruta (puede ser vacía);
// si no hay, se usa body["operacion"]. Con etiqueta, el campo correspondiente debe estar
// presente. Sin etiqueta gana el primer campo presente en el orden activa, limpieza, estado;
// si no hay ninguno, la actualización va al recurso base. La clave "operacion" se elimina de body.
func ResolverOperacion(etiqueta string, body map[string]any) (Operacion, error) {
	if etiqueta == "" {
		if v, ok := body[CampoOperacion]; ok {
			s, _ := v.(string)
			if s == "" {
				return "", domain.NewValidationError(CampoOperacion, "debe ser un texto no vacío")
			}
			etiqueta = s
		}
	}
	delete(body, CampoOperacion)

	if etiqueta != "" {
		op, ok := ParseOperacion(etiqueta)
		if !ok {
			return "", domain.NewValidationError(CampoOperacion, "operación desconocida: "+etiqueta)
		}
		if op != OperacionDatos {
			if _, ok := body[string(op)]; !ok {
				return "", domain.NewValidationError(string(op), "es requerido para la operación "+string(op))
			}
		}
		return op, nil
	}

	for _, op := range prioridad {
		if _, ok := body[string(op)]; ok {
			return op, nil
		}
	}
	return OperacionDatos, nil
}
