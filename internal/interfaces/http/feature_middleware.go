package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/stacksketch/stacksketch-api/internal/application/dto"
)

// featureChecker es el contrato mínimo que necesita el middleware para
// verificar features. Lo implementa *usecase.AccessControlService; el uso de
// interfaz evita el import circular.
type featureChecker interface {
	CanUseFeature(ctx context.Context, userID, feature string) (bool, error)
}

// RequireFeature devuelve un middleware Fiber que verifica si el usuario del
// token tiene el feature activo. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalUserID).
//
// Comportamiento:
//   - 403 Forbidden → feature denegado para el usuario.
//   - 503 Service Unavailable → fallo de infraestructura al consultar el store.
//   - Si no hay user_id en el contexto, responde 401 (el AuthMiddleware debería haberlo puesto).
func RequireFeature(feature string, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		allowed, err := checker.CanUseFeature(c.Context(), userID, feature)
		if err != nil {
			// Fallo de infraestructura: no confundirlo con una denegación.
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "FEATURE_CHECK_FAILED",
				Message: "no se pudo verificar el feature, intente más tarde",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "el feature '" + feature + "' no está activo para este usuario",
			})
		}

		return c.Next()
	}
}
