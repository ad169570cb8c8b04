package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-dashboard/internal/application/dto"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/entity"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/period"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/repository"
)

const (
	statisticsMonths = 12 // ventana móvil de las estadísticas mensuales
	maxQueueLimit    = 100
)

// Claves de agrupación. Es la única derivación fecha → período del paquete.
const (
	monthKeyLayout = "2006-01"
	yearKeyLayout  = "2006"
)

// SalesTotals resultado de sumar un conjunto de órdenes.
type SalesTotals struct {
	ItemsTotal   decimal.Decimal
	ShippingFees decimal.Decimal
	OrderCount   int
}

// Total líneas + envío.
func (t SalesTotals) Total() decimal.Decimal {
	return t.ItemsTotal.Add(t.ShippingFees)
}

// StatisticsUseCase estadísticas de ventas: total por rango, series mensual y
// anual, cola de producción y períodos disponibles.
//
// Las series mensual y anual salen de un único conjunto de filas (una por orden)
// agrupado en Go con una sola función de clave, de modo que gastos de envío y
// total de líneas nunca se cruzan entre claves distintas.
type StatisticsUseCase struct {
	repo repository.SalesRepository
	now  func() time.Time
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(repo repository.SalesRepository, now func() time.Time) *StatisticsUseCase {
	if now == nil {
		now = time.Now
	}
	return &StatisticsUseCase{repo: repo, now: now}
}

// TotalSales suma líneas (quantity × price) y gastos de envío de las órdenes no
// anuladas con fecha en [start, end].
func (uc *StatisticsUseCase) TotalSales(ctx context.Context, start, end time.Time, ownerID string) (SalesTotals, error) {
	if end.Before(start) {
		return SalesTotals{}, domain.ErrInvalidRange
	}
	window := period.Window{Start: start, End: end}
	rows, err := uc.repo.OrderTotals(ctx, salesFilter(&window, ownerID))
	if err != nil {
		return SalesTotals{}, fmt.Errorf("estadísticas: total de ventas: %w", err)
	}
	return summarize(rows, func(o repository.OrderTotalsRow) bool { return window.Contains(o.OrderDate) }), nil
}

// GetSalesTotal interpreta start/end (YYYY-MM-DD, por defecto el mes actual) y
// devuelve el total del rango con días completos.
func (uc *StatisticsUseCase) GetSalesTotal(ctx context.Context, ownerID string, req dto.SalesTotalRequest) (*dto.SalesTotalDTO, error) {
	window, err := uc.parseRange(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	totals, err := uc.TotalSales(ctx, window.Start, window.End, ownerID)
	if err != nil {
		return nil, err
	}
	return &dto.SalesTotalDTO{
		Start:        window.Start.Format(time.DateOnly),
		End:          window.End.Format(time.DateOnly),
		ItemsTotal:   totals.ItemsTotal.Round(2),
		ShippingFees: totals.ShippingFees.Round(2),
		Total:        totals.Total().Round(2),
		OrderCount:   totals.OrderCount,
	}, nil
}

// MonthlyStatistics órdenes y monto por mes desde hace 12 meses (instante móvil,
// el primer mes es parcial) hasta el fin del mes actual, ascendente.
func (uc *StatisticsUseCase) MonthlyStatistics(ctx context.Context, ownerID string) ([]dto.PeriodStatDTO, error) {
	now := uc.now()
	window := period.TrailingMonths(now, statisticsMonths)
	rows, err := uc.repo.OrderTotals(ctx, salesFilter(&window, ownerID))
	if err != nil {
		return nil, fmt.Errorf("estadísticas mensuales: %w", err)
	}
	stats := groupByPeriod(rows, monthKeyLayout, now.Location())
	sort.Slice(stats, func(i, j int) bool { return stats[i].Period < stats[j].Period })
	return stats, nil
}

// YearlyStatistics órdenes y monto por año, sin límite de fechas, descendente.
func (uc *StatisticsUseCase) YearlyStatistics(ctx context.Context, ownerID string) ([]dto.PeriodStatDTO, error) {
	rows, err := uc.repo.OrderTotals(ctx, salesFilter(nil, ownerID))
	if err != nil {
		return nil, fmt.Errorf("estadísticas anuales: %w", err)
	}
	stats := groupByPeriod(rows, yearKeyLayout, uc.now().Location())
	sort.Slice(stats, func(i, j int) bool { return stats[i].Period > stats[j].Period })
	return stats, nil
}

// ProductionQueue productos con más unidades pendientes en órdenes en curso o pagadas.
// limit <= 0 usa DefaultQueueLimit; se acota a 100.
func (uc *StatisticsUseCase) ProductionQueue(ctx context.Context, limit int, ownerID string) ([]dto.QueueProductDTO, error) {
	rows, err := uc.repo.ProductionQueue(ctx, entity.ProductionStatuses(), ownerID, clampQueueLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("estadísticas: cola de producción: %w", err)
	}
	return toQueueDTOs(rows), nil
}

// AvailablePeriods años y meses con órdenes, del más reciente al más antiguo.
func (uc *StatisticsUseCase) AvailablePeriods(ctx context.Context, ownerID string) (*dto.AvailablePeriodsDTO, error) {
	months, err := uc.repo.OrderMonths(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("estadísticas: períodos disponibles: %w", err)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].After(months[j]) })

	out := &dto.AvailablePeriodsDTO{Years: []string{}, Months: []string{}}
	seenMonth := make(map[string]bool, len(months))
	seenYear := make(map[string]bool)
	for _, m := range months {
		// OrderMonths ya viene en hora local: no se convierte de zona.
		if mk := m.Format(monthKeyLayout); !seenMonth[mk] {
			seenMonth[mk] = true
			out.Months = append(out.Months, mk)
		}
		if yk := m.Format(yearKeyLayout); !seenYear[yk] {
			seenYear[yk] = true
			out.Years = append(out.Years, yk)
		}
	}
	return out, nil
}

func (uc *StatisticsUseCase) parseRange(rawStart, rawEnd string) (period.Window, error) {
	now := uc.now()
	current := period.Month(now.Year(), now.Month(), now.Location())
	start, end := current.Start, current.End

	if rawStart != "" {
		t, err := period.ParseDay(rawStart, now.Location())
		if err != nil {
			return period.Window{}, fmt.Errorf("%w: start debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		start = t
	}
	if rawEnd != "" {
		t, err := period.ParseDay(rawEnd, now.Location())
		if err != nil {
			return period.Window{}, fmt.Errorf("%w: end debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		end = t
	}
	if end.Before(start) {
		return period.Window{}, domain.ErrInvalidRange
	}
	return period.Days(start, end), nil
}

// clampQueueLimit aplica el valor por defecto y el máximo de la cola de producción.
func clampQueueLimit(limit int) int {
	if limit <= 0 {
		return DefaultQueueLimit
	}
	if limit > maxQueueLimit {
		return maxQueueLimit
	}
	return limit
}

func salesFilter(window *period.Window, ownerID string) repository.SalesFilter {
	return repository.SalesFilter{
		Window:          window,
		OwnerID:         ownerID,
		ExcludeStatuses: []string{entity.OrderStatusCancelled},
	}
}

// summarize suma las órdenes no anuladas que acepta keep. Una orden repetida
// cuenta una sola vez.
func summarize(rows []repository.OrderTotalsRow, keep func(repository.OrderTotalsRow) bool) SalesTotals {
	var t SalesTotals
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if r.Status == entity.OrderStatusCancelled || seen[r.OrderID] || !keep(r) {
			continue
		}
		seen[r.OrderID] = true
		t.ItemsTotal = t.ItemsTotal.Add(r.ItemsTotal)
		t.ShippingFees = t.ShippingFees.Add(r.ShippingFee)
		t.OrderCount++
	}
	return t
}

// groupByPeriod agrupa las órdenes por la clave layout de su fecha en loc.
func groupByPeriod(rows []repository.OrderTotalsRow, layout string, loc *time.Location) []dto.PeriodStatDTO {
	byKey := make(map[string][]repository.OrderTotalsRow)
	for _, r := range rows {
		key := r.OrderDate.In(loc).Format(layout)
		byKey[key] = append(byKey[key], r)
	}

	out := make([]dto.PeriodStatDTO, 0, len(byKey))
	for key, group := range byKey {
		totals := summarize(group, func(repository.OrderTotalsRow) bool { return true })
		if totals.OrderCount == 0 {
			continue
		}
		out = append(out, dto.PeriodStatDTO{
			Period:      key,
			OrderCount:  totals.OrderCount,
			TotalAmount: totals.Total().Round(2),
		})
	}
	return out
}
