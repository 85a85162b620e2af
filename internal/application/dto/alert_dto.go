package dto

// SupplierInfo proveedor resuelto para un producto alertado (o null).
type SupplierInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlert una alerta por par (producto, bodega) bajo umbral.
// DaysUntilStockout es null cuando no hay tasa de ventas para proyectar
// (nunca cero en ese caso).
type LowStockAlert struct {
	ProductID         string        `json:"product_id"`
	ProductName       string        `json:"product_name"`
	SKU               string        `json:"sku"`
	WarehouseID       string        `json:"warehouse_id"`
	WarehouseName     string        `json:"warehouse_name"`
	CurrentStock      int64         `json:"current_stock"`
	Threshold         int64         `json:"threshold"`
	DaysUntilStockout *int64        `json:"days_until_stockout"`
	Supplier          *SupplierInfo `json:"supplier"`
}

// LowStockAlertsResponse salida del motor de alertas.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}
