package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para registrar un producto con su inventario
// inicial. Price e InitialQuantity son punteros: un valor ausente es un error
// de validación, nunca un default silencioso (cero explícito sí es válido).
type CreateProductRequest struct {
	Name            string           `json:"name"`
	SKU             string           `json:"sku"`
	Price           *decimal.Decimal `json:"price"`
	WarehouseID     string           `json:"warehouse_id"`
	InitialQuantity *int64           `json:"initial_quantity"`
	IsBundle        bool             `json:"is_bundle"`
	Threshold       *int64           `json:"threshold"`
}

// CreateProductResponse salida del registro de producto.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	IsBundle  bool            `json:"is_bundle"`
	Threshold *int64          `json:"threshold"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
