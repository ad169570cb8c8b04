package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Pedidos-dashboard/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consultas de solo lectura sobre órdenes, líneas y productos.
type SalesRepo struct {
	q   Querier
	loc *time.Location
}

// NewSalesRepository construye el adaptador. loc es la zona en la que se
// agrupan los meses de OrderMonths.
func NewSalesRepository(q Querier, loc *time.Location) *SalesRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &SalesRepo{q: q, loc: loc}
}

// OrderTotals una fila por orden con su total de líneas y gastos de envío.
// El LEFT JOIN mantiene las órdenes sin líneas (total 0) y COALESCE cubre el
// envío nulo, así cada orden aparece exactamente una vez.
func (r *SalesRepo) OrderTotals(ctx context.Context, f repository.SalesFilter) ([]repository.OrderTotalsRow, error) {
	w := &whereBuilder{}
	if f.Window != nil {
		w.and("o.order_date BETWEEN %s AND %s", w.arg(f.Window.Start), w.arg(f.Window.End))
	}
	w.owner("o.owner_id", f.OwnerID)
	if len(f.ExcludeStatuses) > 0 {
		w.and("COALESCE(o.status, '') <> ALL(%s)", w.arg(f.ExcludeStatuses))
	}

	query := fmt.Sprintf(`
	SELECT
	    o.id::TEXT                                   AS order_id,
	    o.order_date                                 AS order_date,
	    COALESCE(o.status, '')                       AS status,
	    COALESCE(o.shipping_fee, 0)                  AS shipping_fee,
	    COALESCE(SUM(oi.quantity * p.price), 0)      AS items_total
	FROM orders o
	LEFT JOIN order_items oi ON oi.order_id = o.id
	LEFT JOIN products    p  ON p.id        = oi.product_id
	%s
	GROUP BY o.id, o.order_date, o.status, o.shipping_fee
	ORDER BY o.order_date`, w.sql())

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("postgres.OrderTotals: %w", err)
	}
	defer rows.Close()

	var out []repository.OrderTotalsRow
	for rows.Next() {
		var row repository.OrderTotalsRow
		if err := rows.Scan(&row.OrderID, &row.OrderDate, &row.Status, &row.ShippingFee, &row.ItemsTotal); err != nil {
			return nil, fmt.Errorf("postgres.OrderTotals scan: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.OrderTotals: %w", err)
	}
	return out, nil
}

// ProductionQueue top de productos por cantidad en órdenes con los estados dados.
func (r *SalesRepo) ProductionQueue(ctx context.Context, statuses []string, ownerID string, limit int) ([]repository.ProductQueueRow, error) {
	w := &whereBuilder{}
	w.and("o.status = ANY(%s)", w.arg(statuses))
	w.owner("o.owner_id", ownerID)
	limitArg := w.arg(limit)

	query := fmt.Sprintf(`
	SELECT
	    p.id::TEXT                   AS product_id,
	    p.name                       AS product_name,
	    SUM(oi.quantity)::BIGINT     AS total_quantity
	FROM order_items oi
	JOIN orders   o ON o.id = oi.order_id
	JOIN products p ON p.id = oi.product_id
	%s
	GROUP BY p.id, p.name
	ORDER BY total_quantity DESC, p.name
	LIMIT %s`, w.sql(), limitArg)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("postgres.ProductionQueue: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductQueueRow
	for rows.Next() {
		var row repository.ProductQueueRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("postgres.ProductionQueue scan: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.ProductionQueue: %w", err)
	}
	return out, nil
}

// CountOrders número de órdenes en los estados dados.
func (r *SalesRepo) CountOrders(ctx context.Context, statuses []string, ownerID string) (int, error) {
	w := &whereBuilder{}
	w.and("o.status = ANY(%s)", w.arg(statuses))
	w.owner("o.owner_id", ownerID)

	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM orders o %s`, w.sql())
	if err := r.q.QueryRow(ctx, query, w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("postgres.CountOrders: %w", err)
	}
	return n, nil
}

// SumItems unidades totales en las líneas de órdenes con los estados dados.
// Usa COALESCE para devolver cero si no hay líneas.
func (r *SalesRepo) SumItems(ctx context.Context, statuses []string, ownerID string) (int64, error) {
	w := &whereBuilder{}
	w.and("o.status = ANY(%s)", w.arg(statuses))
	w.owner("o.owner_id", ownerID)

	var n int64
	query := fmt.Sprintf(`
	SELECT COALESCE(SUM(oi.quantity), 0)::BIGINT
	FROM order_items oi
	JOIN orders o ON o.id = oi.order_id
	%s`, w.sql())
	if err := r.q.QueryRow(ctx, query, w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("postgres.SumItems: %w", err)
	}
	return n, nil
}

// OrderMonths meses con órdenes, truncados en la zona del repositorio.
func (r *SalesRepo) OrderMonths(ctx context.Context, ownerID string) ([]time.Time, error) {
	w := &whereBuilder{}
	tz := w.arg(r.loc.String())
	w.owner("o.owner_id", ownerID)

	query := fmt.Sprintf(`
	SELECT DISTINCT date_trunc('month', o.order_date AT TIME ZONE %s) AS month
	FROM orders o
	%s
	ORDER BY month DESC`, tz, w.sql())

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("postgres.OrderMonths: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		// timestamp sin zona: pgx lo entrega como hora de pared en UTC.
		var month time.Time
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("postgres.OrderMonths scan: %w", err)
		}
		out = append(out, time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, r.loc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.OrderMonths: %w", err)
	}
	return out, nil
}
