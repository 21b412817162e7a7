// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria protegidas por mutex. Se usa en tests y en desarrollo
// (APP_STORE=memory); en producción los adaptadores viven en postgres.
package memory

import (
	"context"
	"sync"

	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación en memoria del puerto CompanyRepository.
type CompanyRepo struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Company
	order []string // orden de inserción
}

// NewCompanyRepository construye el adaptador en memoria.
func NewCompanyRepository() *CompanyRepo {
	return &CompanyRepo{byID: make(map[string]*entity.Company)}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[company.ID]; !ok {
		r.order = append(r.order, company.ID)
	}
	cp := *company
	r.byID[company.ID] = &cp
	return nil
}

// GetByID obtiene una empresa por ID, o (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// List lista empresas en orden de inserción con paginación.
func (r *CompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Company
	for i := offset; i < len(r.order) && len(list) < limit; i++ {
		cp := *r.byID[r.order[i]]
		list = append(list, &cp)
	}
	return list, nil
}
