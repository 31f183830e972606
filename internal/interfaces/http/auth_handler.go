package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/auth"
	"github.com/jhoicas/hospedaje-lider-api/internal/application/dto"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain"
	"github.com/jhoicas/hospedaje-lider-api/pkg/logger"
)

// CookieConfig atributos de la cookie de sesión.
type CookieConfig struct {
	Secure bool
	Domain string
}

// AuthHandler maneja login, registro y logout.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
	log    *logger.Logger
}

// NewAuthHandler construye el handler de auth. log puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthHandler{uc: uc, cookie: cookie, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombre, apellidos, email, fechaNac, numeroCarnet, password"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		if handled, resp := validationError(c, err); handled {
			return resp
		}
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			return badRequest(c, "DUPLICATE_EMAIL", err.Error())
		case errors.Is(err, domain.ErrDuplicateCarnet):
			return badRequest(c, "DUPLICATE_CARNET", err.Error())
		case errors.Is(err, domain.ErrDuplicate):
			return badRequest(c, "DUPLICATE", "el usuario ya existe")
		}
		h.log.Error().Err(err).Msg("register: error inesperado")
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "numeroCarnet (o email), password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if handled, resp := validationError(c, err); handled {
			return resp
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Credenciales inválidas", Code: "INVALID_CREDENTIALS"})
		}
		h.log.Error().Err(err).Msg("login: error inesperado")
		return internalError(c)
	}
	h.setToken(c, out.Token, time.Now().Add(auth.TokenTTL))
	return c.JSON(out)
}

// Logout POST /api/auth/logout: borra la cookie de sesión.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.setToken(c, "", time.Unix(0, 0))
	return c.JSON(fiber.Map{"mensaje": "Sesión cerrada"})
}

func (h *AuthHandler) setToken(c *fiber.Ctx, value string, expires time.Time) {
	maxAge := int(auth.TokenTTL / time.Second)
	if value == "" {
		maxAge = -1
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		Expires:  expires,
		MaxAge:   maxAge,
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
