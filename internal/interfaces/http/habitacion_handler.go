package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hospedaje-lider-api/internal/domain/habitacion"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain/reserva"
)

var habitacionListParams = []string{"activa", "estado", "limpieza", "tipo", "piso", "search", "page", "limit"}

// HabitacionHandler habitaciones: CRUD, sub-operaciones y búsqueda de disponibles.
type HabitacionHandler struct {
	proxy *Proxy
}

// NewHabitacionHandler construye el handler.
func NewHabitacionHandler(proxy *Proxy) *HabitacionHandler {
	return &HabitacionHandler{proxy: proxy}
}

// List GET /api/habitaciones
func (h *HabitacionHandler) List(c *fiber.Ctx) error {
	return h.proxy.list(c, "/habitaciones", false, habitacionListParams...)
}

// Create POST /api/habitaciones
func (h *HabitacionHandler) Create(c *fiber.Ctx) error {
	return h.proxy.passthrough(c, fiber.MethodPost, "/habitaciones", false)
}

// GetByID GET /api/habitaciones/:id
func (h *HabitacionHandler) GetByID(c *fiber.Ctx) error {
	return h.proxy.do(c, forward{Method: fiber.MethodGet, Path: "/habitaciones/" + escape(c.Params("id"))})
}

// Update PUT|PATCH /api/habitaciones/:id. La operación sale de body.operacion o, si no viene,
// del primer campo presente entre activa, limpieza y estado.
func (h *HabitacionHandler) Update(c *fiber.Ctx) error {
	return h.update(c, "")
}

// UpdateOperacion PATCH /api/habitaciones/:id/:operacion con la operación explícita en la ruta.
func (h *HabitacionHandler) UpdateOperacion(c *fiber.Ctx) error {
	return h.update(c, c.Params("operacion"))
}

func (h *HabitacionHandler) update(c *fiber.Ctx, etiqueta string) error {
	body, ok := jsonBody(c)
	if !ok {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	op, err := habitacion.ResolverOperacion(etiqueta, body)
	if err != nil {
		if handled, resp := validationError(c, err); handled {
			return resp
		}
		return internalError(c)
	}
	method := fiber.MethodPatch
	if op == habitacion.OperacionDatos {
		method = fiber.MethodPut
	}
	return h.proxy.sendJSON(c, method, op.Ruta(escape(c.Params("id"))), body, false)
}

// Disponibles GET /api/habitaciones/disponibles (público). El tipo se resuelve a partir
// del rango cuando el cliente no lo envía.
func (h *HabitacionHandler) Disponibles(c *fiber.Ctx) error {
	s := reserva.Solicitud{
		FechaInicio: c.Query("fechaInicio"),
		FechaFin:    c.Query("fechaFin"),
		HoraInicio:  c.Query("horaInicio"),
		HoraFin:     c.Query("horaFin"),
		Tipo:        c.Query("tipo"),
	}
	q, err := s.Query()
	if err != nil {
		if handled, resp := validationError(c, err); handled {
			return resp
		}
		return internalError(c)
	}
	if v := c.Query("capacidad"); v != "" {
		q.Set("capacidad", v)
	}
	return h.proxy.do(c, forward{Method: fiber.MethodGet, Path: "/habitaciones/disponibles", Query: q})
}
