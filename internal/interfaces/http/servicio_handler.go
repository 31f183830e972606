package http

import "github.com/gofiber/fiber/v2"

var servicioListParams = []string{"activo", "search"}

// ServicioHandler servicios adicionales (desayuno, lavandería...). Los errores del backend
// se responden siempre como 500.
type ServicioHandler struct {
	proxy *Proxy
}

// NewServicioHandler construye el handler.
func NewServicioHandler(proxy *Proxy) *ServicioHandler {
	return &ServicioHandler{proxy: proxy}
}

// List GET /api/servicios
func (h *ServicioHandler) List(c *fiber.Ctx) error {
	return h.proxy.list(c, "/servicios", true, servicioListParams...)
}

// Create POST /api/servicios
func (h *ServicioHandler) Create(c *fiber.Ctx) error {
	return h.proxy.passthrough(c, fiber.MethodPost, "/servicios", true)
}

// Update PUT /api/servicios/:id
func (h *ServicioHandler) Update(c *fiber.Ctx) error {
	return h.proxy.passthrough(c, fiber.MethodPut, "/servicios/"+escape(c.Params("id")), true)
}
