package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hospedaje-lider-api/internal/domain/reserva"
)

var (
	reservaAdminParams = []string{"estado", "fechaInicio", "fechaFin", "habitacionId", "usuarioId", "search", "page", "limit"}
	misReservasParams  = []string{"estado", "page", "limit"}
)

// ReservaHandler reservas del panel y del cliente.
type ReservaHandler struct {
	proxy *Proxy
}

// NewReservaHandler construye el handler.
func NewReservaHandler(proxy *Proxy) *ReservaHandler {
	return &ReservaHandler{proxy: proxy}
}

// Admin GET /api/reservas/admin
func (h *ReservaHandler) Admin(c *fiber.Ctx) error {
	return h.proxy.list(c, "/reservas/admin", false, reservaAdminParams...)
}

// MisReservas GET /api/reservas/mis-reservas
func (h *ReservaHandler) MisReservas(c *fiber.Ctx) error {
	return h.proxy.list(c, "/reservas/mis-reservas", false, misReservasParams...)
}

// Create POST /api/reservas. Si falta tipo se calcula a partir del rango de fechas.
func (h *ReservaHandler) Create(c *fiber.Ctx) error {
	body, ok := jsonBody(c)
	if !ok {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	s := reserva.Solicitud{
		FechaInicio: stringField(body, "fechaInicio"),
		FechaFin:    stringField(body, "fechaFin"),
		HoraInicio:  stringField(body, "horaInicio"),
		HoraFin:     stringField(body, "horaFin"),
		Tipo:        stringField(body, "tipo"),
	}
	tipo, err := s.TipoResuelto()
	if err != nil {
		if handled, resp := validationError(c, err); handled {
			return resp
		}
		return internalError(c)
	}
	body["tipo"] = string(tipo)
	return h.proxy.sendJSON(c, fiber.MethodPost, "/reservas", body, false)
}
