package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los cuatro primeros son los resultados esperados de las mutaciones de
// control de acceso; nunca deben tumbar el proceso.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrCrossTenant        = errors.New("el usuario pertenece a otra empresa")
	ErrUnresolvable       = errors.New("el usuario no tiene empresa asociada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
)
