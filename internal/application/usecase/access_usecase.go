package usecase

import (
	"context"
	"slices"

	"github.com/stacksketch/stacksketch-api/internal/application/ports"
	"github.com/stacksketch/stacksketch-api/internal/domain"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

// AccessControlService es la superficie algorítmica central: responde
// "¿puede el usuario U hacer la acción A sobre X?" y ejecuta las mutaciones
// de ACL y de flags. Toda mutación pasa por aquí para que la autorización se
// verifique exactamente una vez, de forma centralizada.
type AccessControlService struct {
	tenants      *TenantDirectory
	registry     *PermissionRegistry
	userRepo     repository.UserRepository
	resourceRepo repository.ResourceRepository
	personal     ports.PersonalResourceLister

	// onACLChange es un hook opcional de notificación para callers que
	// quieran reaccionar a mutaciones (refresco de UI); no participa en la
	// lógica de autorización.
	onACLChange func(*entity.Resource)
}

// NewAccessControlService construye el servicio componiendo directorio,
// registro de permisos y store de recursos.
func NewAccessControlService(
	tenants *TenantDirectory,
	registry *PermissionRegistry,
	userRepo repository.UserRepository,
	resourceRepo repository.ResourceRepository,
	personal ports.PersonalResourceLister,
) *AccessControlService {
	return &AccessControlService{
		tenants:      tenants,
		registry:     registry,
		userRepo:     userRepo,
		resourceRepo: resourceRepo,
		personal:     personal,
	}
}

// OnACLChange registra el hook de notificación de cambios de ACL.
func (s *AccessControlService) OnACLChange(fn func(*entity.Resource)) {
	s.onACLChange = fn
}

// VisibleResources calcula el conjunto de recursos del kind indicado que el
// usuario puede ver. La regla de dos ramas es el invariante central:
//
//   - employer: todos los recursos de su empresa, sin filtrar por ACL.
//   - employee: recursos de su empresa donde está en canView o es el creador.
//   - regular (sin empresa): su lista personal, nunca recursos de empresa.
//
// Es una query de solo lectura: la ausencia de datos degrada a lista vacía.
func (s *AccessControlService) VisibleResources(ctx context.Context, userID, kind string) ([]*entity.Resource, error) {
	if !entity.ValidKind(kind) {
		return nil, nil
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if user.CompanyID == "" {
		if s.personal == nil {
			return nil, nil
		}
		return s.personal.ListPersonal(ctx, user.ID, kind)
	}
	all, err := s.resourceRepo.ListByCompany(ctx, user.CompanyID, kind)
	if err != nil {
		return nil, err
	}
	if user.Role == entity.RoleEmployer {
		return all, nil
	}
	visible := make([]*entity.Resource, 0, len(all))
	for _, r := range all {
		if r.CreatedBy == user.ID || slices.Contains(r.Permissions.CanView, user.ID) {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

// CanUseFeature informa si el usuario tiene el feature activo. Falla cerrado:
// usuario desconocido o feature inválido → false. Con esto se gatean los
// menús laterales, el upload y los puntos de entrada de scan.
func (s *AccessControlService) CanUseFeature(ctx context.Context, userID, feature string) (bool, error) {
	return s.registry.Get(ctx, userID, feature)
}

// FeatureSet devuelve el mapa completo de flags del usuario (para pintar la
// navegación de una sola consulta).
func (s *AccessControlService) FeatureSet(ctx context.Context, userID string) (entity.FeaturePermissions, error) {
	return s.registry.FullSet(ctx, userID)
}

// GrantResourceAccess agrega o quita granteeID del campo indicado del ACL.
//
// Autorización: el actor debe ser el employer de la empresa del recurso o su
// creador. El grantee debe pertenecer a la misma empresa que el recurso
// (la fuga cross-tenant es estructuralmente imposible). La operación es un
// delta idempotente aplicado atómicamente por recurso, y re-afirma que el
// creador permanece en canView.
func (s *AccessControlService) GrantResourceAccess(ctx context.Context, actorID, resourceID, field, granteeID string, grant bool) (*entity.Resource, error) {
	if !entity.ValidACLField(field) {
		return nil, domain.ErrInvalidInput
	}
	res, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	isEmployer := actor.Role == entity.RoleEmployer && actor.CompanyID == res.CompanyID
	if !isEmployer && res.CreatedBy != actor.ID {
		return nil, domain.ErrForbidden
	}

	grantee, err := s.userRepo.GetByID(ctx, granteeID)
	if err != nil {
		return nil, err
	}
	if grantee == nil {
		return nil, domain.ErrUserNotFound
	}
	if grantee.CompanyID != res.CompanyID {
		return nil, domain.ErrCrossTenant
	}

	updated, err := s.resourceRepo.ApplyACLDelta(ctx, resourceID, field, granteeID, grant)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	// El creador siempre conserva visibilidad, incluso si la revocación lo
	// quitó de canView.
	if !slices.Contains(updated.Permissions.CanView, updated.CreatedBy) {
		updated, err = s.resourceRepo.ApplyACLDelta(ctx, resourceID, entity.ACLFieldView, updated.CreatedBy, true)
		if err != nil {
			return nil, err
		}
	}
	if s.onACLChange != nil {
		s.onACLChange(updated)
	}
	return updated, nil
}

// UpdateUserPermissions aplica un patch de flags sobre el usuario objetivo.
// Solo el employer de la empresa del objetivo puede hacerlo.
func (s *AccessControlService) UpdateUserPermissions(ctx context.Context, actorID, targetUserID string, patch entity.FeaturePermissionsPatch) (entity.FeaturePermissions, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return entity.FeaturePermissions{}, err
	}
	target, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return entity.FeaturePermissions{}, err
	}
	if target == nil {
		return entity.FeaturePermissions{}, domain.ErrUserNotFound
	}
	if actor == nil || actor.Role != entity.RoleEmployer || actor.CompanyID == "" || actor.CompanyID != target.CompanyID {
		return entity.FeaturePermissions{}, domain.ErrForbidden
	}
	return s.registry.SetMany(ctx, targetUserID, patch)
}

// RemoveUser da de baja a un miembro de la empresa. Solo el employer de la
// empresa del objetivo puede hacerlo, y no puede darse de baja a sí mismo
// (la empresa siempre conserva su employer).
func (s *AccessControlService) RemoveUser(ctx context.Context, actorID, targetUserID string) error {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	target, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	if actor == nil || actor.Role != entity.RoleEmployer || actor.CompanyID == "" || actor.CompanyID != target.CompanyID {
		return domain.ErrForbidden
	}
	if target.Role == entity.RoleEmployer {
		return domain.ErrForbidden
	}
	return s.userRepo.Delete(ctx, targetUserID)
}

// EmployeesOf expone el directorio para la tabla de empleados.
func (s *AccessControlService) EmployeesOf(ctx context.Context, companyID string) ([]*entity.User, error) {
	return s.tenants.EmployeesOf(ctx, companyID)
}
