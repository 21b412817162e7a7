package memory

import (
	"context"
	"sync"

	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación en memoria del puerto PermissionRepository.
// El merge se aplica bajo el lock del store, de modo que dos merges
// concurrentes sobre el mismo usuario no se pierden mutuamente.
type PermissionRepo struct {
	mu     sync.RWMutex
	byUser map[string]entity.FeaturePermissions
}

// NewPermissionRepository construye el adaptador en memoria.
func NewPermissionRepository() *PermissionRepo {
	return &PermissionRepo{byUser: make(map[string]entity.FeaturePermissions)}
}

// Get devuelve los flags del usuario, o (nil, nil) si no tiene registro.
func (r *PermissionRepo) Get(_ context.Context, userID string) (*entity.FeaturePermissions, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	perms, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	return &perms, nil
}

// Merge aplica el patch sobre los flags existentes (default-deny si no había
// registro) y devuelve el conjunto resultante.
func (r *PermissionRepo) Merge(_ context.Context, userID string, patch entity.FeaturePermissionsPatch) (entity.FeaturePermissions, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	merged := r.byUser[userID].Merge(patch)
	r.byUser[userID] = merged
	return merged, nil
}

// Set reemplaza el registro completo. No forma parte del puerto; lo usan los
// tests para dejar el store en un estado conocido sin pasar por Merge.
func (r *PermissionRepo) Set(userID string, perms entity.FeaturePermissions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = perms
}
