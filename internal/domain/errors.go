package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrWarehouseNotFound  = errors.New("bodega no encontrada")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrDuplicateSKU       = errors.New("el SKU ya existe")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// ValidationError indica entrada inválida nombrando los campos ofensores.
// Se resuelve antes de intentar cualquier escritura: ningún estado cambia.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "campos requeridos o inválidos: " + strings.Join(e.Fields, ", ")
}

// Is permite errors.Is(err, domain.ErrInvalidInput) sobre un ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError construye el error con la lista de campos.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
