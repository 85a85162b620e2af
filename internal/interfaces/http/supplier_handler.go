package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/usecase"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
)

// SupplierHandler maneja las peticiones HTTP para Supplier (protegido).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// LinkProduct godoc
// @Summary      Asociar proveedor con producto
// @Description  Asociación idempotente: repetirla no duplica la fila.
// @Tags         suppliers
// @Security     Bearer
// @Param        id         path  string  true  "ID del proveedor"
// @Param        productID  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/products/{productID} [post]
func (h *SupplierHandler) LinkProduct(c *fiber.Ctx) error {
	supplierID := c.Params("id")
	productID := c.Params("productID")
	if supplierID == "" || productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id y productID son requeridos"})
	}
	if err := h.uc.LinkProduct(supplierID, productID); err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
