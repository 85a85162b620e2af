package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/alerts"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
)

// AlertHandler maneja las peticiones HTTP del motor de alertas de stock bajo.
type AlertHandler struct {
	uc       *alerts.UseCase
	reportUC *alerts.ReportUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase, reportUC *alerts.ReportUseCase) *AlertHandler {
	return &AlertHandler{uc: uc, reportUC: reportUC}
}

// LowStock godoc
// @Summary      Alertas de stock bajo por empresa
// @Description  Calcula las alertas sobre un snapshot de lectura: productos con ventas en la ventana reciente cuyo stock está bajo el umbral.
// @Tags         alerts
// @Produce      json
// @Param        company_id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "company_id es requerido"})
	}
	out, err := h.uc.ComputeLowStockAlerts(c.UserContext(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// LowStockReport godoc
// @Summary      Reporte PDF de alertas de stock bajo
// @Tags         alerts
// @Produce      application/pdf
// @Param        company_id  path  string  true  "ID de la empresa"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/report [get]
func (h *AlertHandler) LowStockReport(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "company_id es requerido"})
	}
	pdf, err := h.reportUC.GeneratePDF(c.UserContext(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="low-stock-report.pdf"`)
	return c.Send(pdf)
}
