package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stacksketch/stacksketch-api/internal/application/dto"
	"github.com/stacksketch/stacksketch-api/internal/application/usecase"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
)

// ResourceHandler maneja las peticiones HTTP para recursos (diagramas y
// codebases): listado visible, alta y grants/revokes del ACL.
type ResourceHandler struct {
	access   *usecase.AccessControlService
	resource *usecase.ResourceUseCase
}

// NewResourceHandler construye el handler inyectando los casos de uso.
func NewResourceHandler(access *usecase.AccessControlService, resource *usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{access: access, resource: resource}
}

// List godoc
// @Summary      Recursos visibles para el usuario actual
// @Tags         resources
// @Produce      json
// @Param        kind  query  string  true  "diagram | codebase"
// @Success      200   {object}  dto.ResourceListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/resources [get]
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	kind := c.Query("kind")
	if !entity.ValidKind(kind) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind debe ser diagram o codebase"})
	}
	list, err := h.access.VisibleResources(c.Context(), GetUserID(c), kind)
	if err != nil {
		return domainError(c, err)
	}
	items := make([]dto.ResourceResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toResourceResponse(r))
	}
	return c.JSON(dto.ResourceListResponse{Items: items})
}

// CreateDiagram godoc
// @Summary      Crear un diagrama (requiere canGenerateDiagrams)
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResourceRequest  true  "Datos del diagrama"
// @Success      201   {object}  dto.ResourceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/diagrams [post]
func (h *ResourceHandler) CreateDiagram(c *fiber.Ctx) error {
	return h.create(c, entity.KindDiagram)
}

// CreateCodebase godoc
// @Summary      Subir un codebase (requiere canUploadCodebases)
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResourceRequest  true  "Datos del codebase"
// @Success      201   {object}  dto.ResourceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/codebases [post]
func (h *ResourceHandler) CreateCodebase(c *fiber.Ctx) error {
	return h.create(c, entity.KindCodebase)
}

func (h *ResourceHandler) create(c *fiber.Ctx, kind string) error {
	var in dto.CreateResourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Kind = kind
	out, err := h.resource.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toResourceResponse(out))
}

// GrantAccess godoc
// @Summary      Conceder o revocar un derecho del ACL de un recurso
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del recurso"
// @Param        body  body  dto.GrantAccessRequest  true  "Campo, usuario y sentido"
// @Success      200   {object}  dto.ResourceResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resources/{id}/access [post]
func (h *ResourceHandler) GrantAccess(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.GrantAccessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" || !entity.ValidACLField(in.Field) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "field debe ser canView/canEdit/canShare y user_id es requerido"})
	}
	out, err := h.access.GrantResourceAccess(c.Context(), GetUserID(c), id, in.Field, in.UserID, in.Grant)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toResourceResponse(out))
}
