// Package reserva contiene las reglas de negocio de la modalidad de reserva
// (por hora, por noche o por mes) derivada de un rango de fechas.
package reserva

import (
	"time"
)

// Tipo modalidad de la reserva; determina tarifa y parámetros de disponibilidad.
type Tipo string

const (
	TipoHora  Tipo = "hora"
	TipoNoche Tipo = "noche"
	TipoMes   Tipo = "mes"
)

const (
	dia     = 24 * time.Hour
	diasMes = 30
)

// ParseTipo valida un tipo recibido del cliente.
func ParseTipo(s string) (Tipo, bool) {
	switch t := Tipo(s); t {
	case TipoHora, TipoNoche, TipoMes:
		return t, true
	}
	return "", false
}

// ResolverTipo calcula la modalidad a partir del rango. Menos de 24 h es por hora;
// en otro caso cuenta días completos redondeando hacia arriba: 30 o más es por mes,
// el resto por noche. El orden de las fechas no importa.
func ResolverTipo(inicio, fin time.Time) Tipo {
	d := fin.Sub(inicio)
	if d < 0 {
		d = -d
	}
	if d < dia {
		return TipoHora
	}
	dias := int((d + dia - 1) / dia)
	if dias >= diasMes {
		return TipoMes
	}
	return TipoNoche
}
