// Package backend es el adaptador HTTP hacia el servicio externo de habitaciones, reservas,
// servicios y QRs. Todos los handlers proxy comparten un único Client.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/ports"
	"github.com/jhoicas/hospedaje-lider-api/pkg/logger"
)

var _ ports.Backend = (*Client)(nil)

const (
	apiPrefix       = "/api"
	maxResponseSize = 10 << 20
	defaultBackoff  = 200 * time.Millisecond
)

// Config parámetros del cliente.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int           // reintentos extra para GET
	Backoff    time.Duration // espera base entre intentos; crece linealmente
}

// Client implementa ports.Backend sobre net/http.
type Client struct {
	baseURL    string
	maxRetries int
	backoff    time.Duration
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. log puede ser nil.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.Backoff,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// Do envía la petición y devuelve status y cuerpo tal cual. Solo los GET se reintentan,
// ante fallos de red o 502/503/504.
func (c *Client) Do(ctx context.Context, in ports.BackendRequest) (*ports.BackendResponse, error) {
	target := c.baseURL + apiPrefix + in.Path
	if len(in.Query) > 0 {
		target += "?" + in.Query.Encode()
	}

	intentos := 1
	if in.Method == http.MethodGet {
		intentos += c.maxRetries
	}

	var lastErr error
	for i := 1; i <= intentos; i++ {
		resp, err := c.send(ctx, target, in)
		if err == nil && (i == intentos || !reintentable(resp.Status)) {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("backend: timeout o cancelación: %w", ctx.Err())
		}
		if err != nil {
			lastErr = err
		}
		if i == intentos {
			break
		}
		ev := c.log.Warn().Str("method", in.Method).Str("path", in.Path).Int("intento", i)
		if err != nil {
			ev = ev.Err(err)
		} else {
			ev = ev.Int("status", resp.Status)
		}
		ev.Msg("backend: reintentando")

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("backend: timeout o cancelación: %w", ctx.Err())
		case <-time.After(c.backoff * time.Duration(i)):
		}
	}
	return nil, lastErr
}

func (c *Client) send(ctx context.Context, target string, in ports.BackendRequest) (*ports.BackendResponse, error) {
	var body io.Reader
	if in.Body != nil {
		body = bytes.NewReader(in.Body)
	}
	req, err := http.NewRequestWithContext(ctx, in.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("backend: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if in.Token != "" {
		req.Header.Set("Authorization", "Bearer "+in.Token)
	}
	if in.RequestID != "" {
		req.Header.Set("X-Request-ID", in.RequestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: %w", in.Method, in.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("backend: leer respuesta: %w", err)
	}
	if len(raw) > maxResponseSize {
		return nil, errors.New("backend: respuesta supera 10 MiB")
	}
	return &ports.BackendResponse{
		Status:      resp.StatusCode,
		Body:        raw,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func reintentable(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
