package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stacksketch/stacksketch-api/internal/application/auth"
	"github.com/stacksketch/stacksketch-api/internal/application/ports"
	"github.com/stacksketch/stacksketch-api/internal/application/usecase"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
	infraai "github.com/stacksketch/stacksketch-api/internal/infrastructure/ai"
	"github.com/stacksketch/stacksketch-api/internal/infrastructure/memory"
	"github.com/stacksketch/stacksketch-api/internal/infrastructure/postgres"
	"github.com/stacksketch/stacksketch-api/internal/infrastructure/seed"
	httpRouter "github.com/stacksketch/stacksketch-api/internal/interfaces/http"
	"github.com/stacksketch/stacksketch-api/pkg/config"
	"github.com/stacksketch/stacksketch-api/pkg/logger"
)

// stores agrupa los repositorios del backend elegido (postgres o memory)
// junto al lister de recursos personales que ambos implementan.
type stores struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	perms     repository.PermissionRepository
	resources repository.ResourceRepository
	personal  ports.PersonalResourceLister
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var st stores
	if cfg.App.Store == "memory" {
		companyRepo := memory.NewCompanyRepository()
		userRepo := memory.NewUserRepository()
		permRepo := memory.NewPermissionRepository()
		resourceRepo := memory.NewResourceRepository()
		st = stores{
			companies: companyRepo,
			users:     userRepo,
			perms:     permRepo,
			resources: resourceRepo,
			personal:  resourceRepo,
		}
		// Hidratación opcional desde documento JSON. Un seed roto no debe
		// tumbar el arranque: se registra y se sigue con el estado vacío.
		if cfg.Seed.File != "" {
			if err := hydrate(ctx, cfg.Seed, st); err != nil {
				log.Error().Err(err).Str("file", cfg.Seed.File).Msg("seed inicial fallido, arrancando vacío")
			} else {
				log.Info().Str("file", cfg.Seed.File).Msg("seed inicial aplicado")
			}
		}
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		resourceRepo := postgres.NewResourceRepository(pool)
		st = stores{
			companies: postgres.NewCompanyRepository(pool),
			users:     postgres.NewUserRepository(pool),
			perms:     postgres.NewPermissionRepository(pool),
			resources: resourceRepo,
			personal:  resourceRepo,
		}
	}

	tenants := usecase.NewTenantDirectory(st.users, st.companies)
	registry := usecase.NewPermissionRegistry(st.perms, st.users)
	accessSvc := usecase.NewAccessControlService(tenants, registry, st.users, st.resources, st.personal)

	// Generador de diagramas: sin API key la creación exige Content explícito.
	var generator ports.DiagramGenerator
	if cfg.AI.AnthropicAPIKey != "" {
		generator = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}
	resourceUC := usecase.NewResourceUseCase(registry, st.users, st.companies, st.resources, generator)

	authUC := auth.NewAuthUseCase(st.users, st.companies, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StackSketch API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AccessSvc:   accessSvc,
		ResourceUC:  resourceUC,
		CompanyRepo: st.companies,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func hydrate(ctx context.Context, cfg config.SeedConfig, st stores) error {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	doc, err := seed.LoadFile(cfg.File)
	if err != nil {
		return err
	}
	h := seed.NewHydrator(st.companies, st.users, st.perms, st.resources)
	return h.Hydrate(ctx, doc)
}
