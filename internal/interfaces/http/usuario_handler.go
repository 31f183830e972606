package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/documentos"
)

var usuarioListParams = []string{"rol", "activo", "search", "page", "limit"}

// UsuarioHandler administración de usuarios en el backend.
type UsuarioHandler struct {
	proxy *Proxy
	docs  *documentos.Service
}

// NewUsuarioHandler construye el handler. docs puede ser nil.
func NewUsuarioHandler(proxy *Proxy, docs *documentos.Service) *UsuarioHandler {
	return &UsuarioHandler{proxy: proxy, docs: docs}
}

// List GET /api/usuarios
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	return h.proxy.list(c, "/usuarios", false, usuarioListParams...)
}

// Create POST /api/usuarios
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	return h.proxy.passthrough(c, fiber.MethodPost, "/usuarios", false)
}

// GetByID GET /api/usuarios/:id
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	return h.proxy.do(c, forward{Method: fiber.MethodGet, Path: "/usuarios/" + escape(c.Params("id"))})
}

// Update PUT /api/usuarios/:id
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	return h.proxy.passthrough(c, fiber.MethodPut, "/usuarios/"+escape(c.Params("id")), false)
}

// ChangePassword PATCH /api/usuarios/change-password
func (h *UsuarioHandler) ChangePassword(c *fiber.Ctx) error {
	return h.proxy.passthrough(c, fiber.MethodPatch, "/usuarios/change-password", false)
}

// UpdateDocuments PATCH /api/usuarios/update-documents
// Las fotos enviadas como data URL se suben al almacenamiento y se reenvían como URL.
// Si el backend no acepta el cambio, las fotos subidas se eliminan.
func (h *UsuarioHandler) UpdateDocuments(c *fiber.Ctx) error {
	body, ok := jsonBody(c)
	if !ok {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	carpeta := stringField(body, "numeroCarnet")
	if carpeta == "" {
		carpeta = stringField(body, "id")
	}
	var subidas []string
	for _, campo := range []string{"fotoCI1", "fotoCI2"} {
		foto, isString := body[campo].(string)
		if !isString {
			continue
		}
		key, err := h.docs.Normalizar(c.UserContext(), carpeta, &foto)
		if err != nil {
			h.descartar(c, subidas)
			if handled, resp := validationError(c, err); handled {
				return resp
			}
			h.proxy.log.Error().Err(err).Msg("update-documents: fallo al subir documento")
			return internalError(c)
		}
		subidas = append(subidas, key)
		body[campo] = foto
	}
	err := h.proxy.sendJSON(c, fiber.MethodPatch, "/usuarios/update-documents", body, false)
	if status := c.Response().StatusCode(); err != nil || status < 200 || status > 299 {
		h.descartar(c, subidas)
	}
	return err
}

func (h *UsuarioHandler) descartar(c *fiber.Ctx, keys []string) {
	if err := h.docs.Descartar(context.WithoutCancel(c.UserContext()), keys...); err != nil {
		h.proxy.log.Error().Err(err).Msg("update-documents: fallo al eliminar documentos huérfanos")
	}
}
