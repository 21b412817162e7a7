package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stacksketch/stacksketch-api/internal/application/dto"
	"github.com/stacksketch/stacksketch-api/internal/application/usecase"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company:
// onboarding de empresas y tabla de empleados.
type CompanyHandler struct {
	companyRepo repository.CompanyRepository
	access      *usecase.AccessControlService
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(companyRepo repository.CompanyRepository, access *usecase.AccessControlService) *CompanyHandler {
	return &CompanyHandler{companyRepo: companyRepo, access: access}
}

// CreateCompanyRequest entrada para crear una empresa (onboarding).
type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Industry string `json:"industry" validate:"omitempty,max=100"`
	Size     string `json:"size" validate:"omitempty,oneof=startup smb enterprise"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry,omitempty"`
	Size      string    `json:"size,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Industry:  in.Industry,
		Size:      in.Size,
		CreatedAt: time.Now(),
	}
	if err := h.companyRepo.Create(c.Context(), company); err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCompanyResponse(company))
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  dto.PageResponse  `json:"page"`
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	companies, err := h.companyRepo.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	items := make([]CompanyResponse, 0, len(companies))
	for _, company := range companies {
		items = append(items, toCompanyResponse(company))
	}
	return c.JSON(CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	company, err := h.companyRepo.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	if company == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	}
	return c.JSON(toCompanyResponse(company))
}

// Employees godoc
// @Summary      Listar empleados de una empresa (employer incluido)
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/employees [get]
func (h *CompanyHandler) Employees(c *fiber.Ctx) error {
	companyID := c.Params("id")
	// Solo miembros de la propia empresa pueden ver la tabla de empleados.
	if GetCompanyID(c) != companyID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo miembros de la empresa"})
	}
	users, err := h.access.EmployeesOf(c.Context(), companyID)
	if err != nil {
		return domainError(c, err)
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	return c.JSON(dto.EmployeeListResponse{Items: items})
}

func toCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Industry:  c.Industry,
		Size:      c.Size,
		CreatedAt: c.CreatedAt,
	}
}
