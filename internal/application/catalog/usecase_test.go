package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/catalog"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// ─── Fakes en memoria ────────────────────────────────────────────────────────

type fakeProductRepo struct {
	bySKU     map[string]*entity.Product
	created   []*entity.Product
	createErr error
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return f.bySKU[sku], nil
}
func (f *fakeProductRepo) GetByIDs(context.Context, []string) (map[string]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

type fakeInventoryRepo struct {
	created   []*entity.Inventory
	createErr error
}

func (f *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, inv)
	return nil
}
func (f *fakeInventoryRepo) GetByWarehouseAndProduct(string, string) (*entity.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) ListByWarehouse(string, int, int) ([]*entity.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) ListByProductIDs(context.Context, []string) ([]repository.InventoryRow, error) {
	return nil, nil
}

type fakeWarehouseRepo struct {
	byID map[string]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.byID[id], nil
}
func (f *fakeWarehouseRepo) ListByCompany(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}

// fakeTxRunner ejecuta fn con los repos dados; commitErr simula un fallo al
// confirmar la transacción (después de que ambas escrituras pasaron).
type fakeTxRunner struct {
	productRepo   *fakeProductRepo
	inventoryRepo *fakeInventoryRepo
	commitErr     error
	runs          int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	f.runs++
	if err := fn(f.productRepo, f.inventoryRepo); err != nil {
		// Rollback: las escrituras registradas por los fakes se descartan.
		f.productRepo.created = nil
		f.inventoryRepo.created = nil
		return err
	}
	if f.commitErr != nil {
		f.productRepo.created = nil
		f.inventoryRepo.created = nil
		return f.commitErr
	}
	return nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func validRequest() dto.CreateProductRequest {
	price := decimal.NewFromFloat(19.99)
	qty := int64(100)
	return dto.CreateProductRequest{
		Name:            "Gadget",
		SKU:             "SKU-001",
		Price:           &price,
		WarehouseID:     "w1",
		InitialQuantity: &qty,
	}
}

func newFixture() (*catalog.CreateProductUseCase, *fakeTxRunner, *fakeProductRepo, *fakeWarehouseRepo) {
	productRepo := &fakeProductRepo{bySKU: map[string]*entity.Product{}}
	inventoryRepo := &fakeInventoryRepo{}
	warehouseRepo := &fakeWarehouseRepo{byID: map[string]*entity.Warehouse{
		"w1": {ID: "w1", CompanyID: "company-1", Name: "Bodega Central"},
	}}
	runner := &fakeTxRunner{productRepo: productRepo, inventoryRepo: inventoryRepo}
	uc := catalog.NewCreateProductUseCase(runner, productRepo, warehouseRepo)
	return uc, runner, productRepo, warehouseRepo
}

// ─── Tests ───────────────────────────────────────────────────────────────────

// Camino feliz: producto e inventario quedan persistidos y la respuesta trae
// el id del producto creado.
func TestCreateProductWithInventory_Exito(t *testing.T) {
	uc, runner, productRepo, _ := newFixture()

	out, err := uc.CreateProductWithInventory(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ProductID)
	assert.NotEmpty(t, out.Message)

	require.Len(t, productRepo.created, 1)
	require.Len(t, runner.inventoryRepo.created, 1)
	assert.Equal(t, out.ProductID, productRepo.created[0].ID)
	assert.Equal(t, out.ProductID, runner.inventoryRepo.created[0].ProductID)
	assert.Equal(t, "w1", runner.inventoryRepo.created[0].WarehouseID)
	assert.Equal(t, int64(100), runner.inventoryRepo.created[0].Quantity)
}

// Cantidad inicial cero es un nivel explícito válido, no un campo ausente.
func TestCreateProductWithInventory_CantidadCeroValida(t *testing.T) {
	uc, runner, _, _ := newFixture()
	in := validRequest()
	zero := int64(0)
	in.InitialQuantity = &zero

	out, err := uc.CreateProductWithInventory(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, runner.inventoryRepo.created, 1)
	assert.Equal(t, int64(0), runner.inventoryRepo.created[0].Quantity)
}

// La validación reporta todos los campos ofensores juntos, no solo el primero.
func TestCreateProductWithInventory_ValidacionCompleta(t *testing.T) {
	uc, runner, _, _ := newFixture()

	out, err := uc.CreateProductWithInventory(context.Background(), dto.CreateProductRequest{})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Zero(t, runner.runs, "ninguna escritura debe intentarse con entrada inválida")

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"name", "sku", "price", "warehouse_id", "initial_quantity"}, vErr.Fields)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Precio negativo y cantidad negativa también son inválidos.
func TestCreateProductWithInventory_ValoresNegativos(t *testing.T) {
	uc, _, _, _ := newFixture()
	in := validRequest()
	negPrice := decimal.NewFromInt(-1)
	negQty := int64(-5)
	in.Price = &negPrice
	in.InitialQuantity = &negQty

	_, err := uc.CreateProductWithInventory(context.Background(), in)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"price", "initial_quantity"}, vErr.Fields)
}

// SKU ya registrado: el pre-chequeo corta antes de abrir la transacción.
func TestCreateProductWithInventory_SKUDuplicado(t *testing.T) {
	uc, runner, productRepo, _ := newFixture()
	productRepo.bySKU["SKU-001"] = &entity.Product{ID: "existente", SKU: "SKU-001"}

	out, err := uc.CreateProductWithInventory(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrDuplicateSKU)
	assert.Nil(t, out)
	assert.Zero(t, runner.runs)
}

// Bodega inexistente: error específico, sin escrituras.
func TestCreateProductWithInventory_BodegaInexistente(t *testing.T) {
	uc, runner, _, _ := newFixture()
	in := validRequest()
	in.WarehouseID = "no-existe"

	out, err := uc.CreateProductWithInventory(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrWarehouseNotFound)
	assert.Nil(t, out)
	assert.Zero(t, runner.runs)
}

// Si la segunda escritura falla, la primera no sobrevive: todo o nada.
func TestCreateProductWithInventory_FalloInventarioRevierteTodo(t *testing.T) {
	uc, runner, productRepo, _ := newFixture()
	runner.inventoryRepo.createErr = errors.New("disco lleno")

	out, err := uc.CreateProductWithInventory(context.Background(), validRequest())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Empty(t, productRepo.created, "el producto no debe quedar persistido sin su inventario")
	assert.Empty(t, runner.inventoryRepo.created)
}

// Carrera perdida contra otro escritor con el mismo SKU: la violación del
// constraint al commit se reporta igual que el pre-chequeo.
func TestCreateProductWithInventory_ViolacionUnicaAlCommit(t *testing.T) {
	uc, runner, _, _ := newFixture()
	runner.commitErr = domain.ErrDuplicate

	out, err := uc.CreateProductWithInventory(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrDuplicateSKU)
	assert.Nil(t, out)
}
