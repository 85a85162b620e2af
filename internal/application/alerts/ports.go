package alerts

import (
	"context"

	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// ReadTxRunner ejecuta una función dentro de una transacción de solo lectura,
// pasando repositorios atados a esa tx. Todas las lecturas del motor de
// alertas ven el mismo snapshot; una alerta nunca mezcla inventario de antes
// y ventas de después de una escritura concurrente.
type ReadTxRunner interface {
	RunRead(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
		supplierRepo repository.SupplierRepository,
	) error) error
}

// ReportGenerator genera el PDF del reporte de alertas de stock bajo.
type ReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, companyName string, report *dto.LowStockAlertsResponse) ([]byte, error)
}
