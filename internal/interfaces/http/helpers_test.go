package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/auth"
	"github.com/jhoicas/hospedaje-lider-api/internal/application/documentos"
	"github.com/jhoicas/hospedaje-lider-api/internal/application/ports"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain/entity"
	apphttp "github.com/jhoicas/hospedaje-lider-api/internal/interfaces/http"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// stubBackend registra las llamadas y responde con status/body fijos.
type stubBackend struct {
	mu     sync.Mutex
	calls  []ports.BackendRequest
	status int
	body   string
	err    error
}

func (s *stubBackend) Do(_ context.Context, req ports.BackendRequest) (*ports.BackendResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	body := s.body
	if body == "" {
		body = `{"ok":true}`
	}
	return &ports.BackendResponse{Status: status, Body: []byte(body), ContentType: "application/json"}, nil
}

func (s *stubBackend) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubBackend) last(t *testing.T) ports.BackendRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.calls, "se esperaba una llamada al backend")
	return s.calls[len(s.calls)-1]
}

// memRepo repositorio de usuarios en memoria.
type memRepo struct {
	mu    sync.Mutex
	users []*entity.Usuario
}

func (r *memRepo) Create(_ context.Context, u *entity.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.users {
		if x.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
		if x.NumeroCarnet == u.NumeroCarnet {
			return domain.ErrDuplicateCarnet
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memRepo) find(match func(*entity.Usuario) bool) (*entity.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.users {
		if match(x) {
			cp := *x
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) FindByID(_ context.Context, id string) (*entity.Usuario, error) {
	return r.find(func(u *entity.Usuario) bool { return u.ID == id })
}

func (r *memRepo) FindByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	return r.find(func(u *entity.Usuario) bool { return u.Email == email })
}

func (r *memRepo) FindByCarnet(_ context.Context, carnet string) (*entity.Usuario, error) {
	return r.find(func(u *entity.Usuario) bool { return u.NumeroCarnet == carnet })
}

type testEnv struct {
	app     *fiber.App
	backend *stubBackend
	repo    *memRepo
}

func newTestEnv(t *testing.T, opts ...func(*apphttp.RouterDeps)) *testEnv {
	t.Helper()
	backend := &stubBackend{}
	repo := &memRepo{}
	deps := apphttp.RouterDeps{
		AuthUC:  auth.NewAuthUseCase(repo, nil, auth.Config{JWTSecret: testJWTSecret, Issuer: "test", DefaultRole: entity.RolGerente}),
		Backend: backend,
		Docs:    documentos.NewService(nil),
	}
	for _, o := range opts {
		o(&deps)
	}
	app := fiber.New()
	apphttp.Router(app, deps)
	return &testEnv{app: app, backend: backend, repo: repo}
}

// call lanza una petición; body puede ser nil, string o cualquier valor JSON.
func (e *testEnv) call(t *testing.T, method, target string, body any, headers ...string) *http.Response {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bearer(tok string) []string { return []string{"Authorization", "Bearer " + tok} }

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var m map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func sentBody(t *testing.T, req ports.BackendRequest) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &m))
	return m
}
