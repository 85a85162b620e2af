package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// CompanyID debe referenciar una Company existente (FK en la tabla).
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Location  string // opcional, "" = sin ubicación
	CreatedAt time.Time
	UpdatedAt time.Time
}
