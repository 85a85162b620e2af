package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// CreateProductUseCase registra un producto junto con su fila inicial de
// inventario como una sola unidad atómica (todo o nada).
type CreateProductUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateProductWithInventory valida la entrada, verifica unicidad del SKU y
// existencia de la bodega, y dentro de una transacción inserta el producto y
// su inventario inicial. Cualquier fallo después de la validación deja la BD
// sin cambios. Una violación del constraint único detectada en el commit se
// trata igual que el pre-chequeo (ErrDuplicateSKU): el constraint es el
// árbitro final ante escritores concurrentes.
func (uc *CreateProductUseCase) CreateProductWithInventory(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	// 1. Validación completa antes de cualquier escritura.
	var invalid []string
	if in.Name == "" {
		invalid = append(invalid, "name")
	}
	if in.SKU == "" {
		invalid = append(invalid, "sku")
	}
	if in.Price == nil || in.Price.LessThan(decimal.Zero) {
		invalid = append(invalid, "price")
	}
	if in.WarehouseID == "" {
		invalid = append(invalid, "warehouse_id")
	}
	// Cero es un nivel de inventario explícito válido; ausente no lo es.
	if in.InitialQuantity == nil || *in.InitialQuantity < 0 {
		invalid = append(invalid, "initial_quantity")
	}
	if in.Threshold != nil && *in.Threshold < 0 {
		invalid = append(invalid, "threshold")
	}
	if len(invalid) > 0 {
		return nil, domain.NewValidationError(invalid...)
	}

	// 2. Unicidad del SKU contra el estado comprometido actual.
	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}

	// 3. La bodega referenciada debe existir.
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		SKU:       in.SKU,
		Price:     *in.Price,
		IsBundle:  in.IsBundle,
		Threshold: in.Threshold,
		CreatedAt: now,
		UpdatedAt: now,
	}
	inventory := &entity.Inventory{
		ID:          uuid.New().String(),
		WarehouseID: in.WarehouseID,
		ProductID:   product.ID,
		Quantity:    *in.InitialQuantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 4. Inserción atómica: Commit si ambas escrituras pasan, Rollback si no.
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return inventoryRepo.Create(inventory)
	})
	if err != nil {
		// Carrera perdida contra otro escritor con el mismo SKU: el error de
		// constraint al commit equivale al pre-chequeo.
		if err == domain.ErrDuplicate || err == domain.ErrDuplicateSKU {
			return nil, domain.ErrDuplicateSKU
		}
		return nil, err
	}

	return &dto.CreateProductResponse{
		Message:   "producto creado con inventario inicial",
		ProductID: product.ID,
	}, nil
}
