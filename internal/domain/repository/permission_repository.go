package repository

import (
	"context"

	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
)

// PermissionRepository define el puerto de persistencia para los flags de
// features por usuario. Get devuelve (nil, nil) si el usuario no tiene
// registro propio (caso de los usuarios regular).
type PermissionRepository interface {
	Get(ctx context.Context, userID string) (*entity.FeaturePermissions, error)
	// Merge aplica el patch sobre los flags existentes (default-deny si no
	// había registro) de forma atómica por usuario, y devuelve el conjunto
	// resultante completo.
	Merge(ctx context.Context, userID string, patch entity.FeaturePermissionsPatch) (entity.FeaturePermissions, error)
}
