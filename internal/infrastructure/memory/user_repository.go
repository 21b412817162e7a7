package memory

import (
	"context"
	"sync"

	"github.com/stacksketch/stacksketch-api/internal/domain"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
// Mantiene el orden de inserción para ListByCompany.
type UserRepo struct {
	mu    sync.RWMutex
	byID  map[string]*entity.User
	order []string
}

// NewUserRepository construye el adaptador en memoria.
func NewUserRepository() *UserRepo {
	return &UserRepo{byID: make(map[string]*entity.User)}
}

// Create persiste un nuevo usuario. Devuelve ErrEmailAlreadyExists si el
// email ya está registrado.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if r.byID[id].Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	if _, ok := r.byID[user.ID]; !ok {
		r.order = append(r.order, user.ID)
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

// GetByID obtiene un usuario por ID, o (nil, nil) si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// GetByEmail obtiene un usuario por email, o (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.byID[id].Email == email {
			cp := *r.byID[id]
			return &cp, nil
		}
	}
	return nil, nil
}

// Update actualiza un usuario existente.
func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

// ListByCompany devuelve los usuarios de la empresa en orden de inserción.
func (r *UserRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.User
	for _, id := range r.order {
		if r.byID[id].CompanyID == companyID {
			cp := *r.byID[id]
			list = append(list, &cp)
		}
	}
	return list, nil
}

// GetEmployer devuelve el employer de la empresa, o (nil, nil) si no hay.
func (r *UserRepo) GetEmployer(_ context.Context, companyID string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		u := r.byID[id]
		if u.CompanyID == companyID && u.Role == entity.RoleEmployer {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
