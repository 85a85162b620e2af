package entity

import "time"

// Supplier representa un proveedor asociado a cero o más productos
// (relación N:M vía product_suppliers).
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
