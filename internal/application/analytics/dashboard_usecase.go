// Package analytics contiene los casos de uso de los tableros por rol
// (comercial, PAO, producción) y de las estadísticas de ventas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Pedidos-dashboard/internal/application/dto"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/entity"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/period"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/repository"
)

// DefaultQueueLimit productos que muestra la cola de producción si no se configura otro valor.
const DefaultQueueLimit = 10

// DashboardUseCase arma el modelo de vista de cada tablero.
//
// Fuente de datos: StatusAggregator (conteos y filas por estado) y SalesRepository
// (carga de producción). Todas las consultas son de solo lectura.
type DashboardUseCase struct {
	agg        *StatusAggregator
	salesRepo  repository.SalesRepository
	now        func() time.Time
	queueLimit int
}

// NewDashboardUseCase construye el caso de uso. now debe devolver la hora en la
// zona horaria de la aplicación; los límites de día y mes se calculan en ella.
// queueLimit se acota igual que en las estadísticas (10 por defecto, máximo 100).
func NewDashboardUseCase(
	agg *StatusAggregator,
	salesRepo repository.SalesRepository,
	now func() time.Time,
	queueLimit int,
) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{agg: agg, salesRepo: salesRepo, now: now, queueLimit: clampQueueLimit(queueLimit)}
}

// Commercial cotizaciones del mes por estado y su serie diaria.
func (uc *DashboardUseCase) Commercial(ctx context.Context, month, ownerID string) (*dto.CommercialDashboardDTO, error) {
	p := period.Resolve(month, uc.now())
	statuses := CommercialStatuses()

	b, err := uc.agg.Breakdown(ctx, QuoteSource, statuses, p, ownerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard comercial: %w", err)
	}

	return &dto.CommercialDashboardDTO{
		SelectedMonth: p.Label,
		Counts:        b.Counts,
		ChartLabels:   b.Histogram.Labels,
		ChartSeries:   b.Histogram.Series,
	}, nil
}

// Pao tarjetas del día y de la semana más el gráfico mensual de "PAO fait".
//
// Tres consultas en paralelo:
//  1. conteo por estado PAO de hoy
//  2. conteo de la semana (lunes → domingo) de los tres estados PAO
//  3. desglose del mes seleccionado para "PAO fait"
func (uc *DashboardUseCase) Pao(ctx context.Context, month, ownerID string) (*dto.PaoDashboardDTO, error) {
	now := uc.now()
	p := period.Resolve(month, now)
	statuses := PrePressStatuses()
	chartStatus := entity.PrePressStatusDone

	var (
		today map[string]int
		week  int
		chart *MonthBreakdown
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		today, err = uc.agg.Count(gctx, PrePressSource, statuses, period.Today(now), ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		week, err = uc.agg.CountTotal(gctx, PrePressSource, statuses, period.ThisWeek(now), ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		chart, err = uc.agg.Breakdown(gctx, PrePressSource, []string{chartStatus}, p, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard PAO: %w", err)
	}

	return &dto.PaoDashboardDTO{
		WorkInProgressToday:   today[entity.PrePressStatusInProgress],
		WorkDoneToday:         today[entity.PrePressStatusDone],
		WorkModificationToday: today[entity.PrePressStatusModification],
		WorksThisWeek:         week,
		SelectedMonth:         p.Label,
		ChartLabels:           chart.Histogram.Labels,
		ChartValues:           chart.Histogram.Series[chartStatus],
	}, nil
}

// Production tarjetas del día, carga actual de producción y gráfico mensual de
// órdenes "pour livraison". El filtro del día usa la fecha de la orden, igual
// que el tablero PAO.
func (uc *DashboardUseCase) Production(ctx context.Context, month, ownerID string) (*dto.ProductionDashboardDTO, error) {
	now := uc.now()
	p := period.Resolve(month, now)
	chartStatus := entity.ProductionStatusReadyForDelivery
	queueStatuses := entity.ProductionStatuses()

	var (
		today  map[string]int
		chart  *MonthBreakdown
		orders int
		items  int64
		queue  []repository.ProductQueueRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		today, err = uc.agg.Count(gctx, ProductionSource, ProductionBoardStatuses(), period.Today(now), ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		chart, err = uc.agg.Breakdown(gctx, ProductionSource, []string{chartStatus}, p, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		if orders, err = uc.salesRepo.CountOrders(gctx, queueStatuses, ownerID); err != nil {
			return fmt.Errorf("órdenes en producción: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if items, err = uc.salesRepo.SumItems(gctx, queueStatuses, ownerID); err != nil {
			return fmt.Errorf("artículos en producción: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if queue, err = uc.salesRepo.ProductionQueue(gctx, queueStatuses, ownerID, uc.queueLimit); err != nil {
			return fmt.Errorf("cola de producción: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard producción: %w", err)
	}

	return &dto.ProductionDashboardDTO{
		WorkInProgressToday:       today[entity.ProductionStatusInProgress],
		WorkReadyForDeliveryToday: today[entity.ProductionStatusReadyForDelivery],
		OrdersInProduction:        int64(orders),
		ItemsInProduction:         items,
		ProductionQueue:           toQueueDTOs(queue),
		SelectedMonth:             p.Label,
		ChartLabels:               chart.Histogram.Labels,
		ChartValues:               chart.Histogram.Series[chartStatus],
	}, nil
}

func toQueueDTOs(rows []repository.ProductQueueRow) []dto.QueueProductDTO {
	out := make([]dto.QueueProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.QueueProductDTO{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			TotalQuantity: r.TotalQuantity,
		})
	}
	return out
}
