package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Pedidos-dashboard/internal/domain/period"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/repository"
)

// MonthBreakdown conteos del mes por estado y su reparto diario.
type MonthBreakdown struct {
	Period    period.Period
	Counts    map[string]int
	Histogram DailyHistogram
}

// StatusAggregator cuenta filas de un Source por estado. Es el único punto que
// consultan los tres tableros; cada uno solo cambia el Source y los estados.
type StatusAggregator struct {
	repo repository.StatusRepository
}

// NewStatusAggregator construye el agregador.
func NewStatusAggregator(repo repository.StatusRepository) *StatusAggregator {
	return &StatusAggregator{repo: repo}
}

// Count devuelve el conteo por estado en la ventana. Todos los estados pedidos
// están en el mapa, con cero si no hay filas.
func (a *StatusAggregator) Count(
	ctx context.Context,
	src repository.Source,
	statuses []string,
	window period.Window,
	ownerID string,
) (map[string]int, error) {
	out := make(map[string]int, len(statuses))
	for _, s := range statuses {
		out[s] = 0
	}
	if len(statuses) == 0 {
		return out, nil
	}

	counts, err := a.repo.CountByStatus(ctx, repository.StatusFilter{
		Source:   src,
		Statuses: statuses,
		Window:   window,
		OwnerID:  ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("analytics: conteo por estado: %w", err)
	}
	for s := range out {
		out[s] = counts[s]
	}
	return out, nil
}

// CountTotal suma los conteos de todos los estados pedidos.
func (a *StatusAggregator) CountTotal(
	ctx context.Context,
	src repository.Source,
	statuses []string,
	window period.Window,
	ownerID string,
) (int, error) {
	counts, err := a.Count(ctx, src, statuses, window, ownerID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// Breakdown calcula en paralelo los conteos del mes y el histograma diario.
func (a *StatusAggregator) Breakdown(
	ctx context.Context,
	src repository.Source,
	statuses []string,
	p period.Period,
	ownerID string,
) (*MonthBreakdown, error) {
	var (
		counts map[string]int
		rows   []repository.StatusRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = a.Count(gctx, src, statuses, p.Window(), ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = a.repo.FetchRows(gctx, repository.StatusFilter{
			Source:   src,
			Statuses: statuses,
			Window:   p.Window(),
			OwnerID:  ownerID,
		})
		if err != nil {
			return fmt.Errorf("analytics: filas del mes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &MonthBreakdown{
		Period:    p,
		Counts:    counts,
		Histogram: BuildDailyHistogram(p, statuses, rows),
	}, nil
}
