package analytics

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/Pedidos-dashboard/internal/domain/period"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/repository"
)

// Formatos de texto aceptados para fechas sin tipo.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	time.DateOnly,
}

// NormalizeTimestamp convierte el valor de fecha de una fila en time.Time.
//
// Entradas aceptadas (lista cerrada):
//   - time.Time y *time.Time
//   - pgtype.Timestamptz, pgtype.Timestamp y pgtype.Date válidos y finitos
//   - string o []byte en RFC3339, "2006-01-02 15:04:05" (admite fracciones) o "2006-01-02";
//     sin zona se interpretan en loc
//   - map[string]any con la fecha bajo "date" (cualquiera de los tipos anteriores)
//     y opcionalmente la zona bajo "timezone": nombre IANA ("Europe/Paris"),
//     desplazamiento ("+02:00") o abreviatura conocida ("UTC"); una zona ilegible
//     descarta la fila
//
// Valores nulos, inválidos, infinitos, el instante cero o cualquier otro tipo
// devuelven ok=false y la fila se descarta.
func NormalizeTimestamp(v any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		t = *x
	case pgtype.Timestamptz:
		if !x.Valid || x.InfinityModifier != pgtype.Finite {
			return time.Time{}, false
		}
		t = x.Time
	case pgtype.Timestamp:
		if !x.Valid || x.InfinityModifier != pgtype.Finite {
			return time.Time{}, false
		}
		t = wallClockIn(x.Time, loc)
	case pgtype.Date:
		if !x.Valid || x.InfinityModifier != pgtype.Finite {
			return time.Time{}, false
		}
		t = wallClockIn(x.Time, loc)
	case string:
		return parseTimestamp(x, loc)
	case []byte:
		return parseTimestamp(string(x), loc)
	case map[string]any:
		if tz, ok := x["timezone"].(string); ok && tz != "" {
			l, ok := hydratedZone(tz)
			if !ok {
				return time.Time{}, false
			}
			loc = l
		}
		raw, ok := x["date"]
		if !ok {
			return time.Time{}, false
		}
		if _, nested := raw.(map[string]any); nested {
			return time.Time{}, false
		}
		return NormalizeTimestamp(raw, loc)
	default:
		return time.Time{}, false
	}
	if t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// hydratedZone interpreta la zona de una fecha hidratada como arreglo.
func hydratedZone(tz string) (*time.Location, bool) {
	if l, err := time.LoadLocation(tz); err == nil {
		return l, true
	}
	for _, layout := range []string{"-07:00", "-0700", "-07"} {
		if t, err := time.Parse(layout, tz); err == nil {
			_, offset := t.Zone()
			return time.FixedZone(tz, offset), true
		}
	}
	return nil, false
}

func parseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil && !t.IsZero() {
			return t, true
		}
	}
	return time.Time{}, false
}

// wallClockIn reinterpreta la hora de pared de t (timestamp sin zona) en loc.
func wallClockIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// DailyHistogram conteos por día del mes y por estado.
type DailyHistogram struct {
	Labels []string
	Series map[string][]int // índice 0 = día 1
}

// Total suma la serie de un estado.
func (h DailyHistogram) Total(status string) int {
	n := 0
	for _, v := range h.Series[status] {
		n += v
	}
	return n
}

// BuildDailyHistogram reparte las filas por día del período y estado. Cada estado
// seguido tiene una serie de p.Days ceros aunque no tenga filas. Las filas con
// fecha ilegible, fuera del mes o con un estado no seguido se ignoran.
func BuildDailyHistogram(p period.Period, statuses []string, rows []repository.StatusRow) DailyHistogram {
	h := DailyHistogram{
		Labels: p.Labels(),
		Series: make(map[string][]int, len(statuses)),
	}
	for _, s := range statuses {
		h.Series[s] = make([]int, p.Days)
	}

	window := p.Window()
	loc := p.Location()
	for _, r := range rows {
		series, tracked := h.Series[r.Status]
		if !tracked {
			continue
		}
		t, ok := NormalizeTimestamp(r.Timestamp, loc)
		if !ok {
			continue
		}
		t = t.In(loc)
		if !window.Contains(t) {
			continue
		}
		series[t.Day()-1]++
	}
	return h
}
