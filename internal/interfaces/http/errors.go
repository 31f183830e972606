package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/dto"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain"
)

const msgInterno = "Error interno del servidor"

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgInterno, Code: "INTERNAL"})
}

// validationError responde 400 si err es de validación; devuelve false si no lo es.
func validationError(c *fiber.Ctx, err error) (bool, error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return true, badRequest(c, "VALIDATION", ve.Error())
	}
	if errors.Is(err, domain.ErrValidation) {
		return true, badRequest(c, "VALIDATION", err.Error())
	}
	return false, nil
}
