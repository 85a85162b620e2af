package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
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
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
