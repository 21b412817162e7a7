package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stacksketch/stacksketch-api/internal/application/auth"
	"github.com/stacksketch/stacksketch-api/internal/application/usecase"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AccessSvc   *usecase.AccessControlService
	ResourceUC  *usecase.ResourceUseCase
	CompanyRepo repository.CompanyRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies: el alta es pública (onboarding precede al registro de usuarios).
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyRepo, deps.AccessSvc)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	// La tabla de empleados sí requiere identidad: solo miembros de la empresa.
	companies.Get("/:id/employees", AuthMiddleware(deps.JWTSecret), companyHandler.Employees)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Recursos visibles y ACL (protegido; la autorización fina vive en el
	// AccessControlService)
	resourceHandler := NewResourceHandler(deps.AccessSvc, deps.ResourceUC)
	resources := protected.Group("/resources")
	resources.Get("/", resourceHandler.List)
	resources.Post("/:id/access", resourceHandler.GrantAccess)

	// Puntos de entrada de creación, gateados por feature como en los menús
	// del producto.
	protected.Post("/diagrams",
		RequireFeature(entity.FeatureGenerateDiagrams, deps.AccessSvc),
		resourceHandler.CreateDiagram)
	protected.Post("/codebases",
		RequireFeature(entity.FeatureUploadCodebases, deps.AccessSvc),
		resourceHandler.CreateCodebase)

	// Features y flags por usuario (protegido)
	userHandler := NewUserHandler(deps.AccessSvc)
	users := protected.Group("/users")
	users.Get("/me/features", userHandler.MyFeatures)
	users.Patch("/:id/permissions", RequireRole(entity.RoleEmployer), userHandler.UpdatePermissions)
	// Gestión de equipo: baja de miembros, gateada por rol y feature.
	users.Delete("/:id",
		RequireRole(entity.RoleEmployer),
		RequireFeature(entity.FeatureManageTeam, deps.AccessSvc),
		userHandler.Remove)
}
