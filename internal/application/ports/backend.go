package ports

import (
	"context"
	"net/url"
)

// BackendRequest llamada al servicio externo. Path es relativo a su prefijo /api.
type BackendRequest struct {
	Method    string
	Path      string
	Query     url.Values
	Body      []byte // JSON; nil = sin cuerpo
	Token     string // se reenvía como Authorization: Bearer
	RequestID string
}

// BackendResponse respuesta cruda del backend, relayada tal cual al cliente.
type BackendResponse struct {
	Status      int
	Body        []byte
	ContentType string
}

// Backend puerto de salida hacia el servicio que almacena habitaciones, reservas, servicios y QRs.
// Un error significa fallo de transporte; un status no-2xx no es error.
type Backend interface {
	Do(ctx context.Context, req BackendRequest) (*BackendResponse, error)
}
