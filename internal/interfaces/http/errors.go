package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stacksketch/stacksketch-api/internal/application/dto"
	"github.com/stacksketch/stacksketch-api/internal/domain"
)

// domainError traduce los errores de dominio a respuestas HTTP. Los cuatro
// resultados esperados de las mutaciones (NotFound, Forbidden, CrossTenant,
// Unresolvable) son recuperables y nunca se reportan como 500.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrCrossTenant):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "CROSS_TENANT", Message: "el usuario pertenece a otra empresa"})
	case errors.Is(err, domain.ErrUnresolvable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UNRESOLVABLE", Message: "el usuario no tiene empresa asociada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
