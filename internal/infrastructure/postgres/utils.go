package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Pedidos-dashboard/internal/domain/repository"
)

// whereBuilder acumula condiciones AND y sus argumentos posicionales ($1, $2, ...).
// Solo los nombres de columna se interpolan, y siempre salen de constantes del paquete.
type whereBuilder struct {
	conds []string
	args  []any
}

// arg registra un argumento y devuelve su marcador.
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) and(format string, a ...any) {
	w.conds = append(w.conds, fmt.Sprintf(format, a...))
}

// owner filtra por propietario si ownerID no está vacío.
func (w *whereBuilder) owner(column, ownerID string) {
	if ownerID != "" {
		w.and("%s = %s::uuid", column, w.arg(ownerID))
	}
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, "\n\t  AND ")
}

// ── Mapeo Source → columnas ──────────────────────────────────────────────────

type sourceColumns struct {
	table  string
	id     string
	status string
	date   string
	owner  string
}

// columnsFor traduce un Source a columnas reales. Las combinaciones que no
// existen en el esquema devuelven error en lugar de una consulta inválida.
func columnsFor(src repository.Source) (sourceColumns, error) {
	switch src.Entity {
	case repository.EntityQuote:
		if src.Status != repository.StatusGeneral || src.Date != repository.DateCreated {
			break
		}
		return sourceColumns{table: "quotes", id: "id", status: "status", date: "created_at", owner: "owner_id"}, nil

	case repository.EntityOrder:
		cols := sourceColumns{table: "orders", id: "id", owner: "owner_id"}
		switch src.Status {
		case repository.StatusGeneral:
			cols.status = "status"
		case repository.StatusPrePress:
			cols.status = "prepress_status"
		case repository.StatusProduction:
			cols.status = "production_status"
		default:
			return sourceColumns{}, fmt.Errorf("postgres: campo de estado desconocido %q", src.Status)
		}
		switch src.Date {
		case repository.DateCreated:
			cols.date = "order_date"
		case repository.DateUpdated:
			cols.date = "updated_at"
		default:
			return sourceColumns{}, fmt.Errorf("postgres: campo de fecha desconocido %q", src.Date)
		}
		return cols, nil
	}
	return sourceColumns{}, fmt.Errorf("postgres: source no soportado %+v", src)
}
