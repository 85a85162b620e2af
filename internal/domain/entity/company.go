package entity

import "time"

// Company representa una empresa dueña de bodegas (multi-tenant).
// El ID es inmutable una vez creada.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
