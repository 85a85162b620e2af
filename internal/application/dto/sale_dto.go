package dto

import "time"

// RegisterSaleRequest entrada para registrar una venta (hecho append-only).
// SaleDate opcional: ausente = ahora. Una vez registrada es inmutable.
type RegisterSaleRequest struct {
	ProductID string     `json:"product_id"`
	Quantity  *int64     `json:"quantity"`
	SaleDate  *time.Time `json:"sale_date"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	SaleDate  time.Time `json:"sale_date"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleListResponse lista paginada de ventas recientes.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
