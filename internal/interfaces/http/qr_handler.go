package http

import "github.com/gofiber/fiber/v2"

var qrListParams = []string{"estado", "page", "limit"}

// QRHandler códigos QR de pago.
type QRHandler struct {
	proxy *Proxy
}

// NewQRHandler construye el handler.
func NewQRHandler(proxy *Proxy) *QRHandler {
	return &QRHandler{proxy: proxy}
}

// List GET /api/qrs
func (h *QRHandler) List(c *fiber.Ctx) error {
	return h.proxy.list(c, "/qrs", false, qrListParams...)
}

// Create POST /api/qrs
func (h *QRHandler) Create(c *fiber.Ctx) error {
	return h.proxy.passthrough(c, fiber.MethodPost, "/qrs", false)
}

// GetByID GET /api/qrs/:id
func (h *QRHandler) GetByID(c *fiber.Ctx) error {
	return h.proxy.do(c, forward{Method: fiber.MethodGet, Path: "/qrs/" + escape(c.Params("id"))})
}

// Update PUT /api/qrs/:id
func (h *QRHandler) Update(c *fiber.Ctx) error {
	return h.proxy.passthrough(c, fiber.MethodPut, "/qrs/"+escape(c.Params("id")), false)
}

// UpdateEstado PATCH /api/qrs/:id/estado
func (h *QRHandler) UpdateEstado(c *fiber.Ctx) error {
	return h.proxy.passthrough(c, fiber.MethodPatch, "/qrs/"+escape(c.Params("id"))+"/estado", false)
}
