package http

import (
	"encoding/json"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/dto"
	"github.com/jhoicas/hospedaje-lider-api/internal/application/ports"
	"github.com/jhoicas/hospedaje-lider-api/pkg/logger"
)

// Proxy contrato común de los handlers de recursos: token, query filtrada, cuerpo JSON
// y relay de status y payload del backend.
type Proxy struct {
	backend ports.Backend
	log     *logger.Logger
}

// NewProxy construye el proxy sobre el cliente del backend. log puede ser nil.
func NewProxy(backend ports.Backend, log *logger.Logger) *Proxy {
	if log == nil {
		log = logger.Nop()
	}
	return &Proxy{backend: backend, log: log}
}

// forward una llamada al backend.
type forward struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	// FlattenErrors responde 500 ante cualquier status no-2xx del backend.
	FlattenErrors bool
}

func (p *Proxy) do(c *fiber.Ctx, f forward) error {
	resp, err := p.backend.Do(c.UserContext(), ports.BackendRequest{
		Method:    f.Method,
		Path:      f.Path,
		Query:     f.Query,
		Body:      f.Body,
		Token:     GetToken(c),
		RequestID: c.GetRespHeader(fiber.HeaderXRequestID),
	})
	if err != nil {
		p.log.Error().Err(err).Str("method", f.Method).Str("path", f.Path).Msg("proxy: fallo al llamar al backend")
		return internalError(c)
	}

	if f.FlattenErrors && (resp.Status < 200 || resp.Status > 299) {
		p.log.Warn().Int("status", resp.Status).Str("path", f.Path).Msg("proxy: error del backend")
		msg := upstreamMessage(resp.Body)
		if msg == "" {
			msg = msgInterno
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msg, Code: "UPSTREAM"})
	}

	ct := resp.ContentType
	if ct == "" {
		ct = fiber.MIMEApplicationJSON
	}
	c.Set(fiber.HeaderContentType, ct)
	return c.Status(resp.Status).Send(resp.Body)
}

// passthrough reenvía el cuerpo sin modificar.
func (p *Proxy) passthrough(c *fiber.Ctx, method, path string, flatten bool) error {
	return p.do(c, forward{Method: method, Path: path, Body: rawBody(c), FlattenErrors: flatten})
}

// list reenvía un GET con la query filtrada.
func (p *Proxy) list(c *fiber.Ctx, path string, flatten bool, allowed ...string) error {
	return p.do(c, forward{Method: fiber.MethodGet, Path: path, Query: whitelist(c, allowed...), FlattenErrors: flatten})
}

// sendJSON reenvía un cuerpo ya transformado.
func (p *Proxy) sendJSON(c *fiber.Ctx, method, path string, body map[string]any, flatten bool) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return internalError(c)
	}
	return p.do(c, forward{Method: method, Path: path, Body: raw, FlattenErrors: flatten})
}

// whitelist conserva solo los parámetros reconocidos (con todos sus valores); el resto se descarta.
func whitelist(c *fiber.Ctx, allowed ...string) url.Values {
	q := url.Values{}
	args := c.Context().QueryArgs()
	for _, k := range allowed {
		for _, v := range args.PeekMulti(k) {
			if len(v) > 0 {
				q.Add(k, string(v))
			}
		}
	}
	return q
}

// rawBody copia el cuerpo (fiber reutiliza el buffer); nil si viene vacío.
func rawBody(c *fiber.Ctx) []byte {
	b := c.Body()
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}

// jsonBody decodifica el cuerpo como objeto. Un cuerpo vacío es un objeto vacío.
func jsonBody(c *fiber.Ctx) (map[string]any, bool) {
	body := map[string]any{}
	if len(c.Body()) == 0 {
		return body, true
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil || body == nil {
		return nil, false
	}
	return body, true
}

// upstreamMessage extrae "error" o "message" del JSON de error del backend.
func upstreamMessage(raw []byte) string {
	var m struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &m) != nil {
		return ""
	}
	if s, ok := m.Error.(string); ok && s != "" {
		return s
	}
	return m.Message
}

// escape codifica un parámetro de ruta. fiber entrega c.Params sin decodificar.
func escape(id string) string {
	if v, err := url.PathUnescape(id); err == nil {
		id = v
	}
	return url.PathEscape(id)
}
