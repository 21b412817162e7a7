package ports

import (
	"context"

	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
)

// PersonalResourceLister define el puerto hacia la lista de recursos
// personales de un usuario regular (colaborador externo al subsistema
// enterprise). Un usuario sin empresa nunca ve recursos de empresa: su
// conjunto visible sale exclusivamente de aquí.
type PersonalResourceLister interface {
	ListPersonal(ctx context.Context, userID, kind string) ([]*entity.Resource, error)
}
