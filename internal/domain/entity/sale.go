package entity

import "time"

// Sale representa una venta registrada (hecho append-only, inmutable).
// Las produce el subsistema de ventas; el motor de alertas solo las lee.
type Sale struct {
	ID        string
	ProductID string
	Quantity  int64 // siempre > 0
	SaleDate  time.Time
	CreatedAt time.Time
}
