package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stacksketch/stacksketch-api/internal/application/ports"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

var (
	_ repository.ResourceRepository = (*ResourceRepo)(nil)
	_ ports.PersonalResourceLister  = (*ResourceRepo)(nil)
)

// ResourceRepo implementación en memoria del puerto ResourceRepository.
// También sirve la lista personal de los usuarios regular (recursos con
// CompanyID vacío), cumpliendo ports.PersonalResourceLister.
//
// ApplyACLDelta se ejecuta bajo el lock del store: cada mutación observa el
// ACL más reciente y escribe sin intercalarse con otra mutación sobre el
// mismo recurso.
type ResourceRepo struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Resource
	order []string
}

// NewResourceRepository construye el adaptador en memoria.
func NewResourceRepository() *ResourceRepo {
	return &ResourceRepo{byID: make(map[string]*entity.Resource)}
}

func cloneResource(r *entity.Resource) *entity.Resource {
	cp := *r
	cp.Permissions = r.Permissions.Clone()
	cp.TechStack = slices.Clone(r.TechStack)
	return &cp
}

// Create persiste un nuevo recurso; asigna ID si viene vacío.
func (r *ResourceRepo) Create(_ context.Context, resource *entity.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if resource.ID == "" {
		resource.ID = uuid.New().String()
	}
	if _, ok := r.byID[resource.ID]; !ok {
		r.order = append(r.order, resource.ID)
	}
	r.byID[resource.ID] = cloneResource(resource)
	return nil
}

// GetByID obtiene un recurso por ID, o (nil, nil) si no existe.
func (r *ResourceRepo) GetByID(_ context.Context, id string) (*entity.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneResource(res), nil
}

// ListByCompany devuelve los recursos del kind de la empresa, en orden de
// inserción.
func (r *ResourceRepo) ListByCompany(_ context.Context, companyID, kind string) ([]*entity.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Resource
	for _, id := range r.order {
		res := r.byID[id]
		if res.CompanyID == companyID && res.Kind == kind {
			list = append(list, cloneResource(res))
		}
	}
	return list, nil
}

// ListPersonal devuelve los recursos personales (sin empresa) creados por el
// usuario. Implementa el puerto PersonalResourceLister.
func (r *ResourceRepo) ListPersonal(_ context.Context, userID, kind string) ([]*entity.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Resource
	for _, id := range r.order {
		res := r.byID[id]
		if res.CompanyID == "" && res.CreatedBy == userID && res.Kind == kind {
			list = append(list, cloneResource(res))
		}
	}
	return list, nil
}

// ReplacePermissions reemplaza el ACL completo. No valida invariantes:
// el caller (AccessControlService) es responsable de preservarlos.
func (r *ResourceRepo) ReplacePermissions(_ context.Context, id string, acl entity.ResourcePermissions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.byID[id]
	if !ok {
		return nil
	}
	res.Permissions = acl.Clone()
	res.LastModified = time.Now()
	return nil
}

// ApplyACLDelta agrega o quita userID del campo indicado de forma atómica e
// idempotente. Devuelve el recurso actualizado, o (nil, nil) si no existe.
func (r *ResourceRepo) ApplyACLDelta(_ context.Context, id, field, userID string, grant bool) (*entity.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	res.Permissions.Apply(field, userID, grant)
	res.LastModified = time.Now()
	return cloneResource(res), nil
}
