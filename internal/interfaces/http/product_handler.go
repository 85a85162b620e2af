package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/catalog"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/usecase"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	createUC *catalog.CreateProductUseCase
	queryUC  *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(createUC *catalog.CreateProductUseCase, queryUC *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{createUC: createUC, queryUC: queryUC}
}

// Create godoc
// @Summary      Registrar producto con inventario inicial
// @Description  Crea el producto y su fila de inventario en la bodega dada, atómicamente.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateProductWithInventory(c.UserContext(), in)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Error()})
		case errors.Is(err, domain.ErrWarehouseNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "WAREHOUSE_NOT_FOUND", Message: "bodega no encontrada"})
		case errors.Is(err, domain.ErrDuplicateSKU):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SKU", Message: "SKU ya existe"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	out, err := h.queryUC.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
