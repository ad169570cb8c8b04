package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Pedidos-dashboard/internal/application/dto"
)

// StatisticsReportGenerator puerto de salida: genera el informe PDF de estadísticas.
type StatisticsReportGenerator interface {
	GenerateStatisticsPDF(ctx context.Context, report dto.StatisticsReportDTO) ([]byte, error)
}

// ReportUseCase reúne las estadísticas y delega el render en el generador.
type ReportUseCase struct {
	stats     *StatisticsUseCase
	generator StatisticsReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(stats *StatisticsUseCase, generator StatisticsReportGenerator, now func() time.Time) *ReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReportUseCase{stats: stats, generator: generator, now: now}
}

// StatisticsPDF devuelve los bytes del informe y el nombre de archivo sugerido.
func (uc *ReportUseCase) StatisticsPDF(ctx context.Context, ownerID string) (pdfBytes []byte, filename string, err error) {
	now := uc.now()
	report := dto.StatisticsReportDTO{
		Title:       "Estadísticas de ventas",
		GeneratedAt: now.Format("02/01/2006 15:04"),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report.Monthly, err = uc.stats.MonthlyStatistics(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		report.Yearly, err = uc.stats.YearlyStatistics(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		report.ProductionQueue, err = uc.stats.ProductionQueue(gctx, DefaultQueueLimit, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, "", fmt.Errorf("informe: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateStatisticsPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("informe: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("estadisticas-%s.pdf", now.Format("2006-01-02")), nil
}
