package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/Pedidos-dashboard/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo conteos por estado de órdenes y cotizaciones.
type StatusRepo struct {
	q Querier
}

// NewStatusRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

func statusWhere(cols sourceColumns, f repository.StatusFilter) *whereBuilder {
	w := &whereBuilder{}
	w.and("%s = ANY(%s)", cols.status, w.arg(f.Statuses))
	w.and("%s BETWEEN %s AND %s", cols.date, w.arg(f.Window.Start), w.arg(f.Window.End))
	w.owner(cols.owner, f.OwnerID)
	return w
}

// CountByStatus cuenta filas por estado en la ventana cerrada [Start, End].
func (r *StatusRepo) CountByStatus(ctx context.Context, f repository.StatusFilter) (map[string]int, error) {
	cols, err := columnsFor(f.Source)
	if err != nil {
		return nil, err
	}
	if len(f.Statuses) == 0 {
		return map[string]int{}, nil
	}
	w := statusWhere(cols, f)
	query := fmt.Sprintf(`
	SELECT %[1]s, COUNT(*)
	FROM %[2]s
	%[3]s
	GROUP BY %[1]s`, cols.status, cols.table, w.sql())

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("postgres.CountByStatus: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int, len(f.Statuses))
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("postgres.CountByStatus scan: %w", err)
		}
		out[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.CountByStatus: %w", err)
	}
	return out, nil
}

// FetchRows devuelve (id, fecha, estado) de cada fila. La fecha se entrega como
// pgtype.Timestamptz y se normaliza en la capa de aplicación.
func (r *StatusRepo) FetchRows(ctx context.Context, f repository.StatusFilter) ([]repository.StatusRow, error) {
	cols, err := columnsFor(f.Source)
	if err != nil {
		return nil, err
	}
	if len(f.Statuses) == 0 {
		return nil, nil
	}
	w := statusWhere(cols, f)
	query := fmt.Sprintf(`
	SELECT %s::TEXT, %s, %s
	FROM %s
	%s
	ORDER BY %[2]s`, cols.id, cols.date, cols.status, cols.table, w.sql())

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("postgres.FetchRows: %w", err)
	}
	defer rows.Close()

	var out []repository.StatusRow
	for rows.Next() {
		var (
			row repository.StatusRow
			ts  pgtype.Timestamptz
		)
		if err := rows.Scan(&row.ID, &ts, &row.Status); err != nil {
			return nil, fmt.Errorf("postgres.FetchRows scan: %w", err)
		}
		row.Timestamp = ts
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.FetchRows: %w", err)
	}
	return out, nil
}
