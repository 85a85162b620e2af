package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/usecase"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
)

// SaleHandler maneja las peticiones HTTP para Sale (protegido).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar venta
// @Description  Las ventas son hechos inmutables; alimentan la ventana de actividad del motor de alertas.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Error()})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas recientes
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	out, err := h.uc.ListRecent(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
