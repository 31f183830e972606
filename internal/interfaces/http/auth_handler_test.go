package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/hospedaje-lider-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/hospedaje-lider-api/pkg/jwt"
)

func registerBody() map[string]any {
	return map[string]any{
		"nombre":       "Carla",
		"apellidos":    "Rojas",
		"email":        "carla@example.com",
		"fechaNac":     "1992-11-05",
		"numeroCarnet": "6543210",
		"password":     "abc123",
	}
}

func TestRegister_201SinHash(t *testing.T) {
	env := newTestEnv(t)

	resp := env.call(t, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	m := decode(t, resp)
	assert.Equal(t, "carla@example.com", m["email"])
	assert.Equal(t, "gerente", m["rol"])
	assert.Equal(t, true, m["activo"])
	assert.NotContains(t, m, "password")
	assert.NotContains(t, m, "passwordHash")
	assert.Equal(t, 0, env.backend.count(), "el registro no pasa por el backend externo")
}

func TestRegister_400(t *testing.T) {
	env := newTestEnv(t)

	corta := registerBody()
	corta["password"] = "12345"
	resp := env.call(t, http.MethodPost, "/api/auth/register", corta)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode(t, resp)["error"], "password")

	sinNombre := registerBody()
	delete(sinNombre, "nombre")
	resp = env.call(t, http.MethodPost, "/api/auth/register", sinNombre)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = env.call(t, http.MethodPost, "/api/auth/register", `{roto`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	assert.Empty(t, env.repo.users)
}

func TestRegister_Duplicados400(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	mismoEmail := registerBody()
	mismoEmail["numeroCarnet"] = "1"
	resp = env.call(t, http.MethodPost, "/api/auth/register", mismoEmail)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_EMAIL", decode(t, resp)["code"])

	mismoCarnet := registerBody()
	mismoCarnet["email"] = "otra@example.com"
	resp = env.call(t, http.MethodPost, "/api/auth/register", mismoCarnet)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_CARNET", decode(t, resp)["code"])
}

func TestLogin_200ConTokenYCookie(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.call(t, http.MethodPost, "/api/auth/login", map[string]string{"numeroCarnet": "6543210", "password": "abc123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.CookieToken {
			cookie = ck
		}
	}
	require.NotNil(t, cookie, "login debe fijar la cookie token")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 86400, cookie.MaxAge)

	m := decode(t, resp)
	tok, _ := m["token"].(string)
	require.NotEmpty(t, tok)
	assert.Equal(t, tok, cookie.Value)

	usuario, _ := m["usuario"].(map[string]any)
	require.NotNil(t, usuario)
	for _, k := range []string{"id", "nombre", "apellidos", "email", "numeroCarnet", "rol"} {
		assert.Contains(t, usuario, k)
	}
	assert.NotContains(t, usuario, "passwordHash")

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, usuario["id"], claims.UserID)
	assert.Equal(t, "gerente", claims.Rol)
}

func TestLogin_401Indistinguible(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/auth/register", registerBody())
	resp.Body.Close()

	var cuerpos []string
	for _, in := range []map[string]string{
		{"numeroCarnet": "6543210", "password": "incorrecta"},
		{"numeroCarnet": "0000000", "password": "abc123"},
		{"email": "nadie@example.com", "password": "abc123"},
	} {
		resp := env.call(t, http.MethodPost, "/api/auth/login", in)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		m := decode(t, resp)
		assert.Equal(t, "Credenciales inválidas", m["error"])
		cuerpos = append(cuerpos, m["error"].(string)+"|"+m["code"].(string))
	}
	assert.Equal(t, cuerpos[0], cuerpos[1])
	assert.Equal(t, cuerpos[0], cuerpos[2])
}

func TestLogin_400SinCampos(t *testing.T) {
	env := newTestEnv(t)

	resp := env.call(t, http.MethodPost, "/api/auth/login", map[string]string{"password": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLogout_BorraCookie(t *testing.T) {
	env := newTestEnv(t)

	resp := env.call(t, http.MethodPost, "/api/auth/logout", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	header := strings.Join(resp.Header.Values("Set-Cookie"), ";")
	assert.Contains(t, header, "token=")
	assert.Contains(t, strings.ToLower(header), "expires=thu, 01 jan 1970")
}

func TestRateLimit_Login(t *testing.T) {
	env := newTestEnv(t, func(d *apphttp.RouterDeps) { d.RateLimitPerMinute = 2 })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp := env.call(t, http.MethodPost, "/api/auth/login", map[string]string{"numeroCarnet": "1", "password": "x"})
		codes = append(codes, resp.StatusCode)
		resp.Body.Close()
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_DeshabilitadoPorDefecto(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 5; i++ {
		resp := env.call(t, http.MethodPost, "/api/auth/login", map[string]string{"numeroCarnet": "1", "password": "x"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestAuth_CarnetNumerico(t *testing.T) {
	env := newTestEnv(t)

	body := registerBody()
	body["numeroCarnet"] = 999999
	resp := env.call(t, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "999999", decode(t, resp)["numeroCarnet"])

	resp = env.call(t, http.MethodPost, "/api/auth/login", `{"numeroCarnet":999999,"password":"abc123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	m := decode(t, resp)
	assert.NotEmpty(t, m["token"])
	assert.Equal(t, "999999", m["usuario"].(map[string]any)["numeroCarnet"])

	resp = env.call(t, http.MethodPost, "/api/auth/login", `{"numeroCarnet":true,"password":"abc123"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
