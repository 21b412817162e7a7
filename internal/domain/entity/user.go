package entity

import "time"

// Roles válidos para User.
// Un regular no pertenece a ninguna empresa (CompanyID vacío) y solo ve
// sus recursos personales, nunca recursos de empresa.
const (
	RoleEmployer = "employer"
	RoleEmployee = "employee"
	RoleRegular  = "regular"
)

// User representa un usuario del sistema. Los usuarios enterprise
// (employer/employee) pertenecen exactamente a una Company; hay un único
// employer por empresa.
type User struct {
	ID           string
	CompanyID    string // vacío para usuarios regular
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // employer, employee, regular
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsEnterprise informa si el usuario pertenece a una empresa.
func (u *User) IsEnterprise() bool {
	return u.Role == RoleEmployer || u.Role == RoleEmployee
}
