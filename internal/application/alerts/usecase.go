package alerts

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// Config política del motor de alertas, inyectada desde la configuración de
// la aplicación (nunca literales embebidos en el cálculo).
type Config struct {
	// LookbackDays define la ventana de "ventas recientes". La tasa diaria
	// se divide siempre por esta longitud fija, no por los días con datos.
	LookbackDays int
	// DefaultThreshold umbral de stock bajo para productos sin Threshold propio.
	DefaultThreshold int64
	// QueryTimeout cota superior para el conjunto de lecturas de una invocación.
	QueryTimeout time.Duration
}

// UseCase calcula alertas de stock bajo para una empresa: combina ventas
// recientes, niveles de inventario y proveedores en una pasada, con lecturas
// en lote (un query por entidad, nunca uno por fila).
type UseCase struct {
	txRunner ReadTxRunner
	cfg      Config
}

// NewUseCase construye el motor con su política.
func NewUseCase(txRunner ReadTxRunner, cfg Config) *UseCase {
	return &UseCase{txRunner: txRunner, cfg: cfg}
}

// ComputeLowStockAlerts devuelve una alerta por cada par (producto, bodega)
// de la empresa cuyo stock está bajo el umbral efectivo, solo entre productos
// con ventas dentro de la ventana. Un producto sin ventas recientes nunca se
// alerta: sin demanda reciente la proyección de quiebre no significa nada.
func (uc *UseCase) ComputeLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.QueryTimeout)
	defer cancel()

	since := time.Now().AddDate(0, 0, -uc.cfg.LookbackDays)

	var out *dto.LowStockAlertsResponse
	err := uc.txRunner.RunRead(ctx, func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
		supplierRepo repository.SupplierRepository,
	) error {
		// 1. Productos activos: los que vendieron dentro de la ventana.
		totals, err := saleRepo.SumQuantityByProductSince(ctx, since)
		if err != nil {
			return err
		}
		if len(totals) == 0 {
			out = &dto.LowStockAlertsResponse{Alerts: []dto.LowStockAlert{}}
			return nil
		}

		soldByProduct := make(map[string]int64, len(totals))
		productIDs := make([]string, 0, len(totals))
		for _, t := range totals {
			soldByProduct[t.ProductID] = t.TotalQuantity
			productIDs = append(productIDs, t.ProductID)
		}

		// 2. Lecturas en lote para el conjunto candidato completo.
		invRows, err := inventoryRepo.ListByProductIDs(ctx, productIDs)
		if err != nil {
			return err
		}
		products, err := productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return err
		}
		suppliers, err := supplierRepo.GetPrimaryByProductIDs(ctx, productIDs)
		if err != nil {
			return err
		}

		out = uc.assemble(companyID, invRows, soldByProduct, products, suppliers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// assemble evalúa cada fila candidata y arma la lista final de alertas.
func (uc *UseCase) assemble(
	companyID string,
	invRows []repository.InventoryRow,
	soldByProduct map[string]int64,
	products map[string]*entity.Product,
	suppliers map[string]*entity.Supplier,
) *dto.LowStockAlertsResponse {
	windowDays := decimal.NewFromInt(int64(uc.cfg.LookbackDays))
	alerts := make([]dto.LowStockAlert, 0)

	for _, row := range invRows {
		// El scoping por empresa se verifica por candidato, nunca se asume
		// del query que lo trajo.
		if row.WarehouseCompanyID != companyID {
			continue
		}
		// Referencia colgante Inventory→Product: se salta la fila, no se
		// aborta el cálculo completo.
		product, ok := products[row.ProductID]
		if !ok || product == nil {
			continue
		}

		threshold := uc.cfg.DefaultThreshold
		if product.Threshold != nil {
			threshold = *product.Threshold
		}
		if row.Quantity >= threshold {
			continue
		}

		// Tasa diaria sobre la longitud fija de la ventana.
		avgDaily := decimal.NewFromInt(soldByProduct[row.ProductID]).Div(windowDays)
		var daysUntilStockout *int64
		if avgDaily.GreaterThan(decimal.Zero) {
			days := decimal.NewFromInt(row.Quantity).Div(avgDaily).Ceil().IntPart()
			daysUntilStockout = &days
		}
		// avgDaily == 0: activo solo por un borde de timing; sin tasa no hay
		// proyección (null, no cero).

		var supplierInfo *dto.SupplierInfo
		if s, ok := suppliers[row.ProductID]; ok && s != nil {
			supplierInfo = &dto.SupplierInfo{
				ID:           s.ID,
				Name:         s.Name,
				ContactEmail: s.ContactEmail,
			}
		}

		alerts = append(alerts, dto.LowStockAlert{
			ProductID:         row.ProductID,
			ProductName:       product.Name,
			SKU:               product.SKU,
			WarehouseID:       row.WarehouseID,
			WarehouseName:     row.WarehouseName,
			CurrentStock:      row.Quantity,
			Threshold:         threshold,
			DaysUntilStockout: daysUntilStockout,
			Supplier:          supplierInfo,
		})
	}

	// Orden estable (product_id, warehouse_id): sin significado semántico,
	// pero hace los resultados comparables entre invocaciones.
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].ProductID != alerts[j].ProductID {
			return alerts[i].ProductID < alerts[j].ProductID
		}
		return alerts[i].WarehouseID < alerts[j].WarehouseID
	})

	return &dto.LowStockAlertsResponse{
		Alerts:      alerts,
		TotalAlerts: len(alerts),
	}
}
