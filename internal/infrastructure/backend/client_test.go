package backend_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/ports"
	"github.com/jhoicas/hospedaje-lider-api/internal/infrastructure/backend"
)

func newClient(url string, retries int) *backend.Client {
	return backend.NewClient(backend.Config{
		BaseURL:    url + "/",
		Timeout:    2 * time.Second,
		MaxRetries: retries,
		Backoff:    time.Millisecond,
	}, nil)
}

func TestDo_ReenviaTokenQueryYCuerpo(t *testing.T) {
	var got *http.Request
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"r1"}`))
	}))
	defer srv.Close()

	resp, err := newClient(srv.URL, 0).Do(context.Background(), ports.BackendRequest{
		Method:    http.MethodPost,
		Path:      "/reservas",
		Query:     url.Values{"page": {"2"}},
		Body:      []byte(`{"habitacionId":"h1"}`),
		Token:     "tok-123",
		RequestID: "req-1",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.JSONEq(t, `{"id":"r1"}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.ContentType)

	require.NotNil(t, got)
	assert.Equal(t, "/api/reservas", got.URL.Path)
	assert.Equal(t, "2", got.URL.Query().Get("page"))
	assert.Equal(t, "Bearer tok-123", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "req-1", got.Header.Get("X-Request-ID"))
	assert.JSONEq(t, `{"habitacionId":"h1"}`, string(gotBody))
}

func TestDo_SinTokenNiCuerpo(t *testing.T) {
	var auth, ctype string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		ctype = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, 0).Do(context.Background(), ports.BackendRequest{Method: http.MethodGet, Path: "/habitaciones/disponibles"})
	require.NoError(t, err)
	assert.Empty(t, auth)
	assert.Empty(t, ctype)
}

func TestDo_RelayaErroresDelBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"habitación ocupada"}`))
	}))
	defer srv.Close()

	resp, err := newClient(srv.URL, 2).Do(context.Background(), ports.BackendRequest{Method: http.MethodGet, Path: "/x"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Contains(t, string(resp.Body), "habitación ocupada")
}

func TestDo_ReintentaGETAnte503(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	resp, err := newClient(srv.URL, 2).Do(context.Background(), ports.BackendRequest{Method: http.MethodGet, Path: "/habitaciones"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestDo_ReintentosAcotados(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	resp, err := newClient(srv.URL, 2).Do(context.Background(), ports.BackendRequest{Method: http.MethodGet, Path: "/qrs"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.Status, "tras agotar reintentos se relaya el último status")
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestDo_NoReintentaPOST(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp, err := newClient(srv.URL, 3).Do(context.Background(), ports.BackendRequest{Method: http.MethodPost, Path: "/reservas", Body: []byte(`{}`)})
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestDo_ErrorDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newClient(srv.URL, 1).Do(context.Background(), ports.BackendRequest{Method: http.MethodGet, Path: "/x"})
	assert.Error(t, err)
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := backend.NewClient(backend.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
	start := time.Now()
	_, err := c.Do(context.Background(), ports.BackendRequest{Method: http.MethodPut, Path: "/x", Body: []byte(`{}`)})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
