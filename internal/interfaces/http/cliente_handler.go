package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hospedaje-lider-api/internal/domain/entity"
)

var clienteListParams = []string{"search", "page", "limit"}

// ClienteHandler clientes del hospedaje: usuarios con rol cliente.
type ClienteHandler struct {
	proxy *Proxy
}

// NewClienteHandler construye el handler.
func NewClienteHandler(proxy *Proxy) *ClienteHandler {
	return &ClienteHandler{proxy: proxy}
}

// List GET /api/clientes -> GET /usuarios?rol=cliente
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	q := whitelist(c, clienteListParams...)
	q.Set("rol", entity.RolCliente)
	return h.proxy.do(c, forward{Method: fiber.MethodGet, Path: "/usuarios", Query: q})
}

// Create POST /api/clientes -> POST /usuarios. Fija rol=cliente y la contraseña inicial
// igual al número de carnet.
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	body, ok := jsonBody(c)
	if !ok {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	carnet := stringField(body, "numeroCarnet")
	if carnet == "" {
		return badRequest(c, "VALIDATION", "numeroCarnet es requerido")
	}
	body["rol"] = entity.RolCliente
	body["password"] = carnet
	return h.proxy.sendJSON(c, fiber.MethodPost, "/usuarios", body, false)
}
