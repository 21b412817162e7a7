package repository

import (
	"context"

	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila; el error queda reservado
// para fallos de infraestructura.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// ListByCompany devuelve todos los usuarios de la empresa (employer
	// incluido) en orden de inserción.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.User, error)
	// GetEmployer devuelve el único employer de la empresa, o (nil, nil).
	GetEmployer(ctx context.Context, companyID string) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
