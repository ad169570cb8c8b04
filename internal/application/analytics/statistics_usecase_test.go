package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-dashboard/internal/application/analytics"
	"github.com/jhoicas/Pedidos-dashboard/internal/application/dto"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/entity"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/period"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/repository"
)

var statsNow = time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

// salesStore: 3 × 10.00 + 5.00 de envío el 15/03/2025 y una orden anulada el mismo mes.
func salesStore() *memStore {
	store := newMemStore()
	store.addProduct("p1", "Flyer A5", "10.00")
	store.addOrder(entity.Order{
		ID:          "o1",
		OrderDate:   date(2025, time.March, 15),
		Status:      entity.OrderStatusPaid,
		ShippingFee: money("5.00"),
	}, entity.OrderItem{ID: "i1", ProductID: "p1", Quantity: 3})
	store.addOrder(entity.Order{
		ID:          "o2",
		OrderDate:   date(2025, time.March, 20),
		Status:      entity.OrderStatusCancelled,
		ShippingFee: money("9.00"),
	}, entity.OrderItem{ID: "i2", ProductID: "p1", Quantity: 100})
	return store
}

func TestTotalSales_MarzoExcluyeAnuladas(t *testing.T) {
	uc := analytics.NewStatisticsUseCase(salesStore(), fixedClock(statsNow))
	march := period.Month(2025, time.March, time.UTC)

	totals, err := uc.TotalSales(context.Background(), march.Start, march.End, "")
	require.NoError(t, err)

	assert.Equal(t, "35.00", totals.Total().StringFixed(2))
	assert.Equal(t, "30.00", totals.ItemsTotal.StringFixed(2))
	assert.Equal(t, "5.00", totals.ShippingFees.StringFixed(2))
	assert.Equal(t, 1, totals.OrderCount)
}

func TestTotalSales_LimitesCerrados(t *testing.T) {
	store := newMemStore()
	store.addOrder(entity.Order{ID: "ini", OrderDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), ShippingFee: money("1")})
	store.addOrder(entity.Order{ID: "fin", OrderDate: time.Date(2025, time.March, 31, 23, 59, 59, 999999999, time.UTC), ShippingFee: money("2")})
	store.addOrder(entity.Order{ID: "fuera", OrderDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), ShippingFee: money("4")})
	uc := analytics.NewStatisticsUseCase(store, fixedClock(statsNow))
	march := period.Month(2025, time.March, time.UTC)

	totals, err := uc.TotalSales(context.Background(), march.Start, march.End, "")
	require.NoError(t, err)
	assert.Equal(t, "3.00", totals.Total().StringFixed(2))
	assert.Equal(t, 2, totals.OrderCount)
}

func TestTotalSales_RangoInvertido(t *testing.T) {
	uc := analytics.NewStatisticsUseCase(salesStore(), fixedClock(statsNow))

	_, err := uc.TotalSales(context.Background(), date(2025, time.March, 2), date(2025, time.March, 1), "")
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestGetSalesTotal(t *testing.T) {
	uc := analytics.NewStatisticsUseCase(salesStore(), fixedClock(statsNow))

	t.Run("por defecto el mes actual", func(t *testing.T) {
		out, err := uc.GetSalesTotal(context.Background(), "", dto.SalesTotalRequest{})
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01", out.Start)
		assert.Equal(t, "2025-03-31", out.End)
		assert.Equal(t, "35.00", out.Total.StringFixed(2))
		assert.Equal(t, 1, out.OrderCount)
	})

	t.Run("día único incluye todo el día", func(t *testing.T) {
		out, err := uc.GetSalesTotal(context.Background(), "", dto.SalesTotalRequest{Start: "2025-03-15", End: "2025-03-15"})
		require.NoError(t, err)
		assert.Equal(t, "35.00", out.Total.StringFixed(2))
	})

	t.Run("formato inválido", func(t *testing.T) {
		_, err := uc.GetSalesTotal(context.Background(), "", dto.SalesTotalRequest{Start: "15/03/2025"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("start posterior a end", func(t *testing.T) {
		_, err := uc.GetSalesTotal(context.Background(), "", dto.SalesTotalRequest{Start: "2025-03-20", End: "2025-03-10"})
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})
}

// Una orden solo con líneas y otra solo con envío aparecen una vez cada una.
func TestMonthlyStatistics_ConjuntoUnico(t *testing.T) {
	store := salesStore()
	store.addProduct("p2", "Póster", "10.00")
	store.addOrder(entity.Order{ID: "solo-lineas", OrderDate: date(2025, time.February, 3), Status: entity.OrderStatusPaid},
		entity.OrderItem{ProductID: "p2", Quantity: 2})
	store.addOrder(entity.Order{ID: "solo-envio", OrderDate: date(2025, time.February, 27), Status: entity.OrderStatusInProgress, ShippingFee: money("7.50")})
	// antes de 12/03/2024 15:00: fuera de la ventana
	store.addOrder(entity.Order{ID: "antigua", OrderDate: date(2024, time.March, 10), Status: entity.OrderStatusPaid, ShippingFee: money("100")})
	uc := analytics.NewStatisticsUseCase(store, fixedClock(statsNow))

	stats, err := uc.MonthlyStatistics(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, stats, 2)
	assert.Equal(t, "2025-02", stats[0].Period)
	assert.Equal(t, 2, stats[0].OrderCount)
	assert.Equal(t, "27.50", stats[0].TotalAmount.StringFixed(2))
	assert.Equal(t, "2025-03", stats[1].Period)
	assert.Equal(t, 1, stats[1].OrderCount)
	assert.Equal(t, "35.00", stats[1].TotalAmount.StringFixed(2))
}

func TestMonthlyStatistics_PrimerMesParcial(t *testing.T) {
	store := newMemStore()
	store.addOrder(entity.Order{ID: "dentro", OrderDate: date(2024, time.March, 20), Status: entity.OrderStatusPaid, ShippingFee: money("5")})
	store.addOrder(entity.Order{ID: "limite", OrderDate: time.Date(2024, time.March, 12, 15, 0, 0, 0, time.UTC), Status: entity.OrderStatusPaid, ShippingFee: money("1")})
	store.addOrder(entity.Order{ID: "fuera", OrderDate: time.Date(2024, time.March, 12, 14, 59, 0, 0, time.UTC), Status: entity.OrderStatusPaid, ShippingFee: money("50")})
	uc := analytics.NewStatisticsUseCase(store, fixedClock(statsNow))

	stats, err := uc.MonthlyStatistics(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, stats, 1)
	assert.Equal(t, "2024-03", stats[0].Period)
	assert.Equal(t, 2, stats[0].OrderCount)
	assert.Equal(t, "6.00", stats[0].TotalAmount.StringFixed(2))
}

func TestMonthlyStatistics_ClaveEnZonaLocal(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	store := newMemStore()
	// 31/01 23:30 UTC es 01/02 en París
	store.addOrder(entity.Order{ID: "o1", OrderDate: time.Date(2025, time.January, 31, 23, 30, 0, 0, time.UTC), ShippingFee: money("1")})
	uc := analytics.NewStatisticsUseCase(store, fixedClock(statsNow.In(paris)))

	stats, err := uc.MonthlyStatistics(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "2025-02", stats[0].Period)
}

func TestYearlyStatistics_Descendente(t *testing.T) {
	store := salesStore()
	store.addOrder(entity.Order{ID: "a", OrderDate: date(2023, time.June, 1), ShippingFee: money("1")})
	store.addOrder(entity.Order{ID: "b", OrderDate: date(2024, time.June, 1), ShippingFee: money("2")})
	store.addOrder(entity.Order{ID: "c", OrderDate: date(2024, time.July, 1), ShippingFee: money("3")})
	store.addOrder(entity.Order{ID: "x", OrderDate: date(2022, time.July, 1), Status: entity.OrderStatusCancelled, ShippingFee: money("3")})
	uc := analytics.NewStatisticsUseCase(store, fixedClock(statsNow))

	stats, err := uc.YearlyStatistics(context.Background(), "")
	require.NoError(t, err)

	periods := make([]string, 0, len(stats))
	for _, s := range stats {
		periods = append(periods, s.Period)
	}
	assert.Equal(t, []string{"2025", "2024", "2023"}, periods)
	assert.Equal(t, 2, stats[1].OrderCount)
	assert.Equal(t, "5.00", stats[1].TotalAmount.StringFixed(2))
}

type limitSpy struct {
	*memStore
	limit int
}

func (s *limitSpy) ProductionQueue(ctx context.Context, statuses []string, ownerID string, limit int) ([]repository.ProductQueueRow, error) {
	s.limit = limit
	return s.memStore.ProductionQueue(ctx, statuses, ownerID, limit)
}

func TestProductionQueue_Limite(t *testing.T) {
	cases := map[int]int{0: 10, -3: 10, 5: 5, 100: 100, 500: 100}
	for in, want := range cases {
		spy := &limitSpy{memStore: salesStore()}
		uc := analytics.NewStatisticsUseCase(spy, fixedClock(statsNow))

		_, err := uc.ProductionQueue(context.Background(), in, "")
		require.NoError(t, err)
		assert.Equal(t, want, spy.limit, "limit=%d", in)
	}
}

func TestProductionQueue_SoloOrdenesEnProduccion(t *testing.T) {
	uc := analytics.NewStatisticsUseCase(salesStore(), fixedClock(statsNow))

	queue, err := uc.ProductionQueue(context.Background(), 0, "")
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "Flyer A5", queue[0].ProductName)
	assert.Equal(t, int64(3), queue[0].TotalQuantity)
}

func TestAvailablePeriods(t *testing.T) {
	store := newMemStore()
	store.addOrder(entity.Order{ID: "a", OrderDate: date(2025, time.March, 1)})
	store.addOrder(entity.Order{ID: "b", OrderDate: date(2025, time.March, 20)})
	store.addOrder(entity.Order{ID: "c", OrderDate: date(2025, time.January, 5)})
	store.addOrder(entity.Order{ID: "d", OrderDate: date(2024, time.December, 24), OwnerID: "u-1"})
	uc := analytics.NewStatisticsUseCase(store, fixedClock(statsNow))

	out, err := uc.AvailablePeriods(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03", "2025-01", "2024-12"}, out.Months)
	assert.Equal(t, []string{"2025", "2024"}, out.Years)

	out, err = uc.AvailablePeriods(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12"}, out.Months)
}

func TestStatistics_ErrorDeRepositorio(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("sin conexión")
	uc := analytics.NewStatisticsUseCase(store, fixedClock(statsNow))

	_, err := uc.MonthlyStatistics(context.Background(), "")
	assert.ErrorIs(t, err, store.err)
	_, err = uc.YearlyStatistics(context.Background(), "")
	assert.ErrorIs(t, err, store.err)
	_, err = uc.AvailablePeriods(context.Background(), "")
	assert.ErrorIs(t, err, store.err)
}
