package usecase

import (
	"context"

	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

// TenantDirectory acota identidades y recursos a su empresa. Es una vista de
// solo lectura sobre los datos del directorio: la ausencia degrada a
// nil/lista vacía en lugar de error, para que los callers puedan continuar
// (un usuario sin empresa simplemente no ve recursos enterprise).
type TenantDirectory struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewTenantDirectory construye el directorio con los puertos de persistencia.
func NewTenantDirectory(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) *TenantDirectory {
	return &TenantDirectory{userRepo: userRepo, companyRepo: companyRepo}
}

// CompanyOf devuelve la empresa del usuario, o nil si el usuario no existe
// o no tiene empresa (usuario regular).
func (d *TenantDirectory) CompanyOf(ctx context.Context, userID string) (*entity.Company, error) {
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID == "" {
		return nil, nil
	}
	return d.companyRepo.GetByID(ctx, user.CompanyID)
}

// EmployeesOf devuelve todos los usuarios de la empresa (employer incluido)
// en orden de inserción. Empresa desconocida devuelve lista vacía.
func (d *TenantDirectory) EmployeesOf(ctx context.Context, companyID string) ([]*entity.User, error) {
	if companyID == "" {
		return nil, nil
	}
	return d.userRepo.ListByCompany(ctx, companyID)
}

// EmployerOf devuelve el único employer de la empresa, o nil si no hay.
func (d *TenantDirectory) EmployerOf(ctx context.Context, companyID string) (*entity.User, error) {
	if companyID == "" {
		return nil, nil
	}
	return d.userRepo.GetEmployer(ctx, companyID)
}
