package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/dto"
)

// CookieToken nombre de la cookie que transporta el token de sesión.
const CookieToken = "token"

// LocalToken key en c.Locals con el token resuelto.
const LocalToken = "token"

// TokenMiddleware exige un token: cookie "token" primero, luego Authorization: Bearer.
// No verifica la firma; el backend externo es quien valida el token.
func TokenMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := extractToken(c)
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "No autorizado", Code: "MISSING_TOKEN"})
		}
		c.Locals(LocalToken, tok)
		return c.Next()
	}
}

// OptionalToken adjunta el token si existe; para las búsquedas públicas.
func OptionalToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok := extractToken(c); tok != "" {
			c.Locals(LocalToken, tok)
		}
		return c.Next()
	}
}

// GetToken devuelve el token del contexto (después de TokenMiddleware u OptionalToken).
func GetToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalToken).(string)
	return s
}

func extractToken(c *fiber.Ctx) string {
	if tok := strings.TrimSpace(c.Cookies(CookieToken)); tok != "" {
		return tok
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
