// seed carga un documento JSON de arranque (empresas, usuarios con sus flags
// y recursos con ACL) en la base PostgreSQL configurada.
//
// Uso: go run ./cmd/seed [ruta/seed.json]
// Por defecto usa SEED_FILE de la configuración, o data/seed.json.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/stacksketch/stacksketch-api/internal/infrastructure/postgres"
	"github.com/stacksketch/stacksketch-api/internal/infrastructure/seed"
	"github.com/stacksketch/stacksketch-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	path := cfg.Seed.File
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		path = "data/seed.json"
	}

	doc, err := seed.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer seed: %v\n", err)
		os.Exit(1)
	}

	timeout := time.Duration(cfg.Seed.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	h := seed.NewHydrator(
		postgres.NewCompanyRepository(pool),
		postgres.NewUserRepository(pool),
		postgres.NewPermissionRepository(pool),
		postgres.NewResourceRepository(pool),
	)
	if err := h.Hydrate(ctx, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Hidratar: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed aplicado desde %s: %d empresas, %d usuarios, %d recursos\n",
		path, len(doc.Companies), len(doc.Users), len(doc.Resources))
}
