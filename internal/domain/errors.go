package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cualquier otro error que suba desde los adaptadores de persistencia se
// considera fallo del almacén y se propaga envuelto con %w.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicate          = errors.New("operación ya registrada")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSelfDelete         = errors.New("no puedes eliminar tu propio usuario")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)
