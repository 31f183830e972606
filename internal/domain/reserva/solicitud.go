package reserva

import (
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/hospedaje-lider-api/internal/domain"
)

var layoutsFecha = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

var layoutsHora = []string{"15:04", "15:04:05"}

// Solicitud parámetros de búsqueda o creación de una reserva tal como llegan del cliente.
type Solicitud struct {
	FechaInicio string
	FechaFin    string
	HoraInicio  string
	HoraFin     string
	Tipo        string // opcional; si viene, tiene prioridad sobre el cálculo
}

// ConHoras indica si el cliente envió ambas horas del día.
func (s Solicitud) ConHoras() bool {
	return strings.TrimSpace(s.HoraInicio) != "" && strings.TrimSpace(s.HoraFin) != ""
}

// Rango devuelve inicio y fin combinando fecha y hora.
// Sin fechaFin: termina el mismo día a horaFin si existe, o 24 h después.
func (s Solicitud) Rango() (inicio, fin time.Time, err error) {
	inicio, err = parseFecha("fechaInicio", s.FechaInicio)
	if err != nil {
		return
	}
	base := inicio
	if s.HoraInicio != "" {
		if inicio, err = conHora("horaInicio", inicio, s.HoraInicio); err != nil {
			return
		}
	}
	switch {
	case s.FechaFin != "":
		if fin, err = parseFecha("fechaFin", s.FechaFin); err != nil {
			return
		}
		if s.HoraFin != "" {
			fin, err = conHora("horaFin", fin, s.HoraFin)
		}
	case s.HoraFin != "":
		fin, err = conHora("horaFin", base, s.HoraFin)
	default:
		fin = inicio.Add(dia)
	}
	return
}

// TipoResuelto devuelve el tipo explícito si es válido o lo calcula desde el rango.
func (s Solicitud) TipoResuelto() (Tipo, error) {
	if s.Tipo != "" {
		t, ok := ParseTipo(s.Tipo)
		if !ok {
			return "", domain.NewValidationError("tipo", "debe ser hora, noche o mes")
		}
		return t, nil
	}
	inicio, fin, err := s.Rango()
	if err != nil {
		return "", err
	}
	return ResolverTipo(inicio, fin), nil
}

// Query arma los parámetros de disponibilidad para el backend. horaInicio y horaFin solo
// viajan cuando el tipo es hora y el cliente envió ambas; si falta una, se omiten las dos.
func (s Solicitud) Query() (url.Values, error) {
	q := url.Values{}
	if s.FechaInicio == "" {
		if s.FechaFin != "" {
			return nil, domain.NewValidationError("fechaInicio", "es requerido cuando viene fechaFin")
		}
		if s.Tipo != "" {
			t, ok := ParseTipo(s.Tipo)
			if !ok {
				return nil, domain.NewValidationError("tipo", "debe ser hora, noche o mes")
			}
			q.Set("tipo", string(t))
			if t == TipoHora && s.ConHoras() {
				q.Set("horaInicio", s.HoraInicio)
				q.Set("horaFin", s.HoraFin)
			}
		}
		return q, nil
	}
	tipo, err := s.TipoResuelto()
	if err != nil {
		return nil, err
	}
	q.Set("fechaInicio", s.FechaInicio)
	if s.FechaFin != "" {
		q.Set("fechaFin", s.FechaFin)
	}
	q.Set("tipo", string(tipo))
	if tipo == TipoHora && s.ConHoras() {
		q.Set("horaInicio", s.HoraInicio)
		q.Set("horaFin", s.HoraFin)
	}
	return q, nil
}

func parseFecha(campo, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, domain.NewValidationError(campo, "es requerido")
	}
	for _, layout := range layoutsFecha {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.NewValidationError(campo, "formato de fecha inválido")
}

// conHora reemplaza la hora del día de fecha por la de v.
func conHora(campo string, fecha time.Time, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range layoutsHora {
		if h, err := time.Parse(layout, v); err == nil {
			y, m, d := fecha.Date()
			return time.Date(y, m, d, h.Hour(), h.Minute(), h.Second(), 0, fecha.Location()), nil
		}
	}
	return time.Time{}, domain.NewValidationError(campo, "formato de hora inválido (HH:MM)")
}
