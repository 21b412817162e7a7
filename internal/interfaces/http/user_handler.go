package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stacksketch/stacksketch-api/internal/application/dto"
	"github.com/stacksketch/stacksketch-api/internal/application/usecase"
)

// UserHandler maneja features y flags de permisos por usuario.
type UserHandler struct {
	access *usecase.AccessControlService
}

// NewUserHandler construye el handler inyectando el servicio de acceso.
func NewUserHandler(access *usecase.AccessControlService) *UserHandler {
	return &UserHandler{access: access}
}

// MyFeatures godoc
// @Summary      Mapa completo de features del usuario actual
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.FeaturePermissionsResponse
// @Router       /api/users/me/features [get]
func (h *UserHandler) MyFeatures(c *fiber.Ctx) error {
	perms, err := h.access.FeatureSet(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toPermissionsResponse(perms))
}

// UpdatePermissions godoc
// @Summary      Merge parcial de flags de un usuario (solo employer)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario objetivo"
// @Param        body  body  dto.UpdatePermissionsRequest  true  "Flags a tocar (los ausentes quedan intactos)"
// @Success      200   {object}  dto.FeaturePermissionsResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/permissions [patch]
func (h *UserHandler) UpdatePermissions(c *fiber.Ctx) error {
	targetID := c.Params("id")
	var in dto.UpdatePermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	perms, err := h.access.UpdateUserPermissions(c.Context(), GetUserID(c), targetID, toPatch(in))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toPermissionsResponse(perms))
}

// Remove godoc
// @Summary      Dar de baja a un miembro del equipo (solo employer, requiere canManageTeam)
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "ID del usuario objetivo"
// @Success      204  "Sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Remove(c *fiber.Ctx) error {
	if err := h.access.RemoveUser(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
