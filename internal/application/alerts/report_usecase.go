package alerts

import (
	"context"

	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// ReportUseCase exporta el reporte de alertas de stock bajo como PDF,
// reutilizando el motor de cálculo y delegando el render al generador.
type ReportUseCase struct {
	engine      *UseCase
	companyRepo repository.CompanyRepository
	generator   ReportGenerator
}

// NewReportUseCase construye el caso de uso de exportación.
func NewReportUseCase(engine *UseCase, companyRepo repository.CompanyRepository, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{engine: engine, companyRepo: companyRepo, generator: generator}
}

// GeneratePDF calcula las alertas de la empresa y devuelve el PDF del reporte.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	report, err := uc.engine.ComputeLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateLowStockReport(ctx, company.Name, report)
}
