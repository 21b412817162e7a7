package repository

import (
	"context"

	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
)

// ResourceRepository define el puerto de persistencia para recursos
// enterprise (diagramas y codebases), acotados por empresa.
//
// El store es mecánico a propósito: no valida invariantes de ACL. La
// aplicación de invariantes (creador siempre en canView, grantee de la misma
// empresa) está centralizada en el AccessControlService.
type ResourceRepository interface {
	Create(ctx context.Context, resource *entity.Resource) error
	GetByID(ctx context.Context, id string) (*entity.Resource, error)
	// ListByCompany devuelve los recursos del kind indicado de la empresa,
	// en orden de inserción.
	ListByCompany(ctx context.Context, companyID, kind string) ([]*entity.Resource, error)
	// ReplacePermissions reemplaza el ACL completo. El caller es responsable
	// de preservar los invariantes antes de llamar.
	ReplacePermissions(ctx context.Context, id string, acl entity.ResourcePermissions) error
	// ApplyACLDelta agrega o quita userID del campo indicado como operación
	// read-modify-write atómica por recurso (dos grants concurrentes sobre
	// campos distintos no se pisan). Devuelve el recurso actualizado o
	// (nil, nil) si no existe.
	ApplyACLDelta(ctx context.Context, id, field, userID string, grant bool) (*entity.Resource, error)
}
