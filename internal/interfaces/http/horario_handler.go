package http

import "github.com/gofiber/fiber/v2"

var horarioParams = []string{"habitacionId", "fecha"}

// HorarioHandler franjas horarias libres de una habitación.
type HorarioHandler struct {
	proxy *Proxy
}

// NewHorarioHandler construye el handler.
func NewHorarioHandler(proxy *Proxy) *HorarioHandler {
	return &HorarioHandler{proxy: proxy}
}

// Disponibles GET /api/horarios/disponibles (público). Cualquier error del backend se responde como 500.
func (h *HorarioHandler) Disponibles(c *fiber.Ctx) error {
	return h.proxy.list(c, "/horarios/disponibles", true, horarioParams...)
}
