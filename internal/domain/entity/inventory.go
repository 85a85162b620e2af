package entity

import "time"

// Inventory representa el stock actual de un producto en una bodega.
// A lo sumo una fila por par (warehouse_id, product_id); quantity >= 0.
// Se crea junto con el producto (operación atómica) y luego se muta
// vía movimientos de stock externos a este núcleo.
type Inventory struct {
	ID          string
	WarehouseID string
	ProductID   string
	Quantity    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
