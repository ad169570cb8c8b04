package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-dashboard/internal/domain/period"
)

// OrderTotalsRow una fila por orden: fecha, estado, gastos de envío y total de líneas.
// Las órdenes sin líneas llegan con ItemsTotal = 0.
type OrderTotalsRow struct {
	OrderID     string
	OrderDate   time.Time
	Status      string
	ShippingFee decimal.Decimal
	ItemsTotal  decimal.Decimal // Σ quantity × products.price
}

// SalesFilter predicado de las consultas de ventas.
type SalesFilter struct {
	Window          *period.Window // nil = sin límite de fechas
	OwnerID         string
	ExcludeStatuses []string
}

// ProductQueueRow cantidad pendiente de un producto en la cola de producción.
type ProductQueueRow struct {
	ProductID     string
	ProductName   string
	TotalQuantity int64
}

// SalesRepository consultas read-only sobre órdenes, líneas y productos.
type SalesRepository interface {
	// OrderTotals devuelve una fila por orden que cumple el filtro, ordenadas por fecha.
	OrderTotals(ctx context.Context, f SalesFilter) ([]OrderTotalsRow, error)

	// ProductionQueue suma cantidades por producto para órdenes en los estados dados,
	// de mayor a menor, como máximo limit productos.
	ProductionQueue(ctx context.Context, statuses []string, ownerID string, limit int) ([]ProductQueueRow, error)

	// CountOrders cuenta órdenes en los estados dados.
	CountOrders(ctx context.Context, statuses []string, ownerID string) (int, error)

	// SumItems suma las cantidades de las líneas de órdenes en los estados dados.
	SumItems(ctx context.Context, statuses []string, ownerID string) (int64, error)

	// OrderMonths devuelve el primer instante de cada mes con órdenes (hora local
	// de la zona configurada), del más reciente al más antiguo.
	OrderMonths(ctx context.Context, ownerID string) ([]time.Time, error)
}
