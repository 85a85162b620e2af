package alerts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/alerts"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// ─── Fakes en memoria ────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	totals []repository.ProductSalesTotal
	err    error
}

func (f *fakeSaleRepo) Create(*entity.Sale) error                        { return nil }
func (f *fakeSaleRepo) ListRecent(int, int) ([]*entity.Sale, error)      { return nil, nil }
func (f *fakeSaleRepo) SumQuantityByProductSince(context.Context, time.Time) ([]repository.ProductSalesTotal, error) {
	return f.totals, f.err
}

type fakeInventoryRepo struct {
	rows []repository.InventoryRow
	err  error
}

func (f *fakeInventoryRepo) Create(*entity.Inventory) error { return nil }
func (f *fakeInventoryRepo) GetByWarehouseAndProduct(string, string) (*entity.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) ListByWarehouse(string, int, int) ([]*entity.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) ListByProductIDs(context.Context, []string) ([]repository.InventoryRow, error) {
	return f.rows, f.err
}

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error                 { return nil }
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (f *fakeProductRepo) GetBySKU(string) (*entity.Product, error)     { return nil, nil }
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error)     { return nil, nil }
func (f *fakeProductRepo) GetByIDs(context.Context, []string) (map[string]*entity.Product, error) {
	return f.byID, nil
}

type fakeSupplierRepo struct {
	byProduct map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) Create(*entity.Supplier) error             { return nil }
func (f *fakeSupplierRepo) GetByID(string) (*entity.Supplier, error)  { return nil, nil }
func (f *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (f *fakeSupplierRepo) LinkProduct(string, string) error          { return nil }
func (f *fakeSupplierRepo) GetPrimaryByProductIDs(context.Context, []string) (map[string]*entity.Supplier, error) {
	return f.byProduct, nil
}

type fakeReadTxRunner struct {
	sales     repository.SaleRepository
	inventory repository.InventoryRepository
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
}

func (f *fakeReadTxRunner) RunRead(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) error) error {
	return fn(f.sales, f.inventory, f.products, f.suppliers)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

const testCompanyID = "company-1"

func defaultConfig() alerts.Config {
	return alerts.Config{
		LookbackDays:     30,
		DefaultThreshold: 10,
		QueryTimeout:     5 * time.Second,
	}
}

func testProduct(id, name, sku string, threshold *int64) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      name,
		SKU:       sku,
		Price:     decimal.NewFromInt(100),
		Threshold: threshold,
	}
}

func invRow(productID, warehouseID string, qty int64) repository.InventoryRow {
	return repository.InventoryRow{
		ID:                 productID + "-" + warehouseID,
		WarehouseID:        warehouseID,
		WarehouseName:      "Bodega " + warehouseID,
		ProductID:          productID,
		Quantity:           qty,
		WarehouseCompanyID: testCompanyID,
	}
}

func newEngine(sales *fakeSaleRepo, inv *fakeInventoryRepo, prods *fakeProductRepo, sups *fakeSupplierRepo) *alerts.UseCase {
	if sups == nil {
		sups = &fakeSupplierRepo{byProduct: map[string]*entity.Supplier{}}
	}
	runner := &fakeReadTxRunner{sales: sales, inventory: inv, products: prods, suppliers: sups}
	return alerts.NewUseCase(runner, defaultConfig())
}

func int64Ptr(v int64) *int64 { return &v }

// ─── Tests ───────────────────────────────────────────────────────────────────

// Un producto con ventas recientes y stock bajo el umbral por defecto genera
// una alerta; el mismo producto con stock sobre el umbral no.
func TestComputeLowStockAlerts_UmbralPorDefecto(t *testing.T) {
	sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{{ProductID: "p1", TotalQuantity: 30}}}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": testProduct("p1", "Gadget", "SKU-1", nil),
	}}

	t.Run("stock 5 bajo umbral 10 alerta", func(t *testing.T) {
		inv := &fakeInventoryRepo{rows: []repository.InventoryRow{invRow("p1", "w1", 5)}}
		out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
		require.NoError(t, err)
		require.Len(t, out.Alerts, 1)
		assert.Equal(t, 1, out.TotalAlerts)
		assert.Equal(t, int64(5), out.Alerts[0].CurrentStock)
		assert.Equal(t, int64(10), out.Alerts[0].Threshold)
	})

	t.Run("stock 15 sobre umbral 10 no alerta", func(t *testing.T) {
		inv := &fakeInventoryRepo{rows: []repository.InventoryRow{invRow("p1", "w1", 15)}}
		out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
		require.NoError(t, err)
		assert.Empty(t, out.Alerts)
		assert.Equal(t, 0, out.TotalAlerts)
	})

	t.Run("stock igual al umbral no alerta", func(t *testing.T) {
		inv := &fakeInventoryRepo{rows: []repository.InventoryRow{invRow("p1", "w1", 10)}}
		out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
		require.NoError(t, err)
		assert.Empty(t, out.Alerts)
	})
}

// El threshold propio del producto prevalece sobre el default.
func TestComputeLowStockAlerts_UmbralPropio(t *testing.T) {
	sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{{ProductID: "p1", TotalQuantity: 10}}}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": testProduct("p1", "Gadget", "SKU-1", int64Ptr(50)),
	}}
	inv := &fakeInventoryRepo{rows: []repository.InventoryRow{invRow("p1", "w1", 30)}}

	out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, int64(50), out.Alerts[0].Threshold)
}

// Proyección de quiebre: 30 unidades vendidas en ventana de 30 días = 1/día;
// con stock 5 quedan 5 días.
func TestComputeLowStockAlerts_ProyeccionQuiebre(t *testing.T) {
	sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{{ProductID: "p1", TotalQuantity: 30}}}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": testProduct("p1", "Gadget", "SKU-1", nil),
	}}
	inv := &fakeInventoryRepo{rows: []repository.InventoryRow{invRow("p1", "w1", 5)}}

	out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	require.NotNil(t, out.Alerts[0].DaysUntilStockout)
	assert.Equal(t, int64(5), *out.Alerts[0].DaysUntilStockout)
}

// La proyección fraccionaria se redondea hacia arriba: 45/30 = 1.5 por día,
// stock 4 → 2.67… → 3 días.
func TestComputeLowStockAlerts_ProyeccionRedondeaArriba(t *testing.T) {
	sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{{ProductID: "p1", TotalQuantity: 45}}}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": testProduct("p1", "Gadget", "SKU-1", nil),
	}}
	inv := &fakeInventoryRepo{rows: []repository.InventoryRow{invRow("p1", "w1", 4)}}

	out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	require.NotNil(t, out.Alerts[0].DaysUntilStockout)
	assert.Equal(t, int64(3), *out.Alerts[0].DaysUntilStockout)
}

// Sin ventas en la ventana no hay candidatos: la respuesta es vacía aunque
// existan filas de inventario en cero.
func TestComputeLowStockAlerts_SinVentasRecientes(t *testing.T) {
	sales := &fakeSaleRepo{totals: nil}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{}}
	inv := &fakeInventoryRepo{rows: []repository.InventoryRow{invRow("p1", "w1", 0)}}

	out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.NotNil(t, out.Alerts, "la lista debe serializar como [] y no como null")
	assert.Empty(t, out.Alerts)
	assert.Equal(t, 0, out.TotalAlerts)
}

// Total vendido cero dentro de la ventana (borde de timing): la alerta sale
// pero sin proyección (null, nunca cero).
func TestComputeLowStockAlerts_TasaCeroSinProyeccion(t *testing.T) {
	sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{{ProductID: "p1", TotalQuantity: 0}}}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": testProduct("p1", "Gadget", "SKU-1", nil),
	}}
	inv := &fakeInventoryRepo{rows: []repository.InventoryRow{invRow("p1", "w1", 5)}}

	out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Nil(t, out.Alerts[0].DaysUntilStockout)
}

// Scoping por empresa: filas de bodegas ajenas nunca aparecen, aunque el
// producto venda en ambas.
func TestComputeLowStockAlerts_ScopingPorEmpresa(t *testing.T) {
	sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{{ProductID: "p1", TotalQuantity: 30}}}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": testProduct("p1", "Gadget", "SKU-1", nil),
	}}
	foreign := invRow("p1", "w9", 1)
	foreign.WarehouseCompanyID = "otra-empresa"
	inv := &fakeInventoryRepo{rows: []repository.InventoryRow{invRow("p1", "w1", 5), foreign}}

	out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "w1", out.Alerts[0].WarehouseID)
}

// Una fila de inventario cuyo producto ya no existe se salta; el resto del
// cálculo sigue.
func TestComputeLowStockAlerts_ProductoColganteSeSalta(t *testing.T) {
	sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{
		{ProductID: "p1", TotalQuantity: 30},
		{ProductID: "fantasma", TotalQuantity: 10},
	}}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": testProduct("p1", "Gadget", "SKU-1", nil),
	}}
	inv := &fakeInventoryRepo{rows: []repository.InventoryRow{
		invRow("p1", "w1", 5),
		invRow("fantasma", "w1", 2),
	}}

	out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "p1", out.Alerts[0].ProductID)
}

// El mismo producto bajo umbral en dos bodegas genera dos alertas, en orden
// estable (product_id, warehouse_id).
func TestComputeLowStockAlerts_DosBodegasOrdenEstable(t *testing.T) {
	sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{
		{ProductID: "p1", TotalQuantity: 30},
		{ProductID: "p2", TotalQuantity: 30},
	}}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": testProduct("p1", "Gadget", "SKU-1", nil),
		"p2": testProduct("p2", "Widget", "SKU-2", nil),
	}}
	inv := &fakeInventoryRepo{rows: []repository.InventoryRow{
		invRow("p2", "w1", 3),
		invRow("p1", "w2", 4),
		invRow("p1", "w1", 5),
	}}

	out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 3)
	assert.Equal(t, "p1", out.Alerts[0].ProductID)
	assert.Equal(t, "w1", out.Alerts[0].WarehouseID)
	assert.Equal(t, "p1", out.Alerts[1].ProductID)
	assert.Equal(t, "w2", out.Alerts[1].WarehouseID)
	assert.Equal(t, "p2", out.Alerts[2].ProductID)
}

// Proveedor resuelto cuando existe; null cuando el producto no tiene ninguno.
func TestComputeLowStockAlerts_Proveedor(t *testing.T) {
	sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{
		{ProductID: "p1", TotalQuantity: 30},
		{ProductID: "p2", TotalQuantity: 30},
	}}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": testProduct("p1", "Gadget", "SKU-1", nil),
		"p2": testProduct("p2", "Widget", "SKU-2", nil),
	}}
	inv := &fakeInventoryRepo{rows: []repository.InventoryRow{
		invRow("p1", "w1", 5),
		invRow("p2", "w1", 5),
	}}
	sups := &fakeSupplierRepo{byProduct: map[string]*entity.Supplier{
		"p1": {ID: "s1", Name: "Proveedora SA", ContactEmail: "ventas@proveedora.co"},
	}}

	out, err := newEngine(sales, inv, prods, sups).ComputeLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 2)
	require.NotNil(t, out.Alerts[0].Supplier)
	assert.Equal(t, "s1", out.Alerts[0].Supplier.ID)
	assert.Equal(t, "Proveedora SA", out.Alerts[0].Supplier.Name)
	assert.Nil(t, out.Alerts[1].Supplier)
}

// Cualquier lectura fallida aborta la invocación completa: nunca una
// respuesta parcial.
func TestComputeLowStockAlerts_LecturaFallidaAborta(t *testing.T) {
	boom := errors.New("conexión perdida")

	t.Run("falla la agregación de ventas", func(t *testing.T) {
		sales := &fakeSaleRepo{err: boom}
		inv := &fakeInventoryRepo{}
		prods := &fakeProductRepo{}
		out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
		require.Error(t, err)
		assert.Nil(t, out)
	})

	t.Run("falla la lectura de inventario", func(t *testing.T) {
		sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{{ProductID: "p1", TotalQuantity: 30}}}
		inv := &fakeInventoryRepo{err: boom}
		prods := &fakeProductRepo{byID: map[string]*entity.Product{}}
		out, err := newEngine(sales, inv, prods, nil).ComputeLowStockAlerts(context.Background(), testCompanyID)
		require.Error(t, err)
		assert.Nil(t, out)
	})
}

// El cálculo es de solo lectura: dos invocaciones sobre el mismo estado
// producen el mismo resultado.
func TestComputeLowStockAlerts_Idempotente(t *testing.T) {
	sales := &fakeSaleRepo{totals: []repository.ProductSalesTotal{{ProductID: "p1", TotalQuantity: 30}}}
	prods := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": testProduct("p1", "Gadget", "SKU-1", nil),
	}}
	inv := &fakeInventoryRepo{rows: []repository.InventoryRow{invRow("p1", "w1", 5)}}
	engine := newEngine(sales, inv, prods, nil)

	out1, err1 := engine.ComputeLowStockAlerts(context.Background(), testCompanyID)
	out2, err2 := engine.ComputeLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, out1, out2)
}
