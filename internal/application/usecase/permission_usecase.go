package usecase

import (
	"context"

	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

// PermissionRegistry mantiene los flags de features por usuario con política
// default-deny. Es mecanismo puro: la autorización de quién puede mutar flags
// la aplica el AccessControlService, no este registro.
type PermissionRegistry struct {
	permRepo repository.PermissionRepository
	userRepo repository.UserRepository
}

// NewPermissionRegistry construye el registro con sus puertos de persistencia.
func NewPermissionRegistry(permRepo repository.PermissionRepository, userRepo repository.UserRepository) *PermissionRegistry {
	return &PermissionRegistry{permRepo: permRepo, userRepo: userRepo}
}

// Get informa si el usuario tiene el feature activo.
//
// Usuario desconocido o feature fuera del conjunto fijo → false.
// Usuario enterprise sin registro de permisos → false (default-deny).
// Usuario regular → no tiene registro FeaturePermissions en absoluto; se le
// aplican los defaults implícitos del producto original (puede ver y generar
// diagramas, nada más). La asimetría es deliberada y está documentada aquí
// en vez de especial-casearse en silencio en cada caller.
func (r *PermissionRegistry) Get(ctx context.Context, userID, feature string) (bool, error) {
	if !entity.ValidFeature(feature) {
		return false, nil
	}
	perms, err := r.FullSet(ctx, userID)
	if err != nil {
		return false, err
	}
	value, _ := perms.Get(feature)
	return value, nil
}

// FullSet devuelve el mapa completo de flags del usuario, aplicando los
// mismos defaults que Get. Usuario desconocido → todo denegado.
func (r *PermissionRegistry) FullSet(ctx context.Context, userID string) (entity.FeaturePermissions, error) {
	user, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entity.FeaturePermissions{}, err
	}
	if user == nil {
		return entity.FeaturePermissions{}, nil
	}
	// Los defaults implícitos son exclusivos de los regular sin empresa;
	// cualquier usuario con empresa cae al registro propio (default-deny),
	// incluso si el rol quedara corrupto en el store.
	if user.Role == entity.RoleRegular && user.CompanyID == "" {
		return entity.RegularUserDefaults(), nil
	}
	perms, err := r.permRepo.Get(ctx, userID)
	if err != nil {
		return entity.FeaturePermissions{}, err
	}
	if perms == nil {
		return entity.FeaturePermissions{}, nil
	}
	return *perms, nil
}

// SetMany aplica el patch sobre los flags existentes del usuario (los campos
// nil quedan intactos) y devuelve el conjunto resultante completo. El merge
// es atómico por usuario a nivel de repositorio.
func (r *PermissionRegistry) SetMany(ctx context.Context, userID string, patch entity.FeaturePermissionsPatch) (entity.FeaturePermissions, error) {
	return r.permRepo.Merge(ctx, userID, patch)
}
