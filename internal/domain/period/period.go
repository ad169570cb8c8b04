// Package period resuelve las ventanas de fecha que usan los tableros: el mes
// seleccionado (?month=YYYY-MM), el día en curso y la semana lunes→domingo.
//
// Todas las ventanas son intervalos cerrados [Start, End], con End en el último
// nanosegundo del día (23:59:59.999999999), de modo que un BETWEEN en SQL no
// pierde filas con fracciones de segundo.
package period

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// LabelLayout formato de la etiqueta del mes seleccionado.
const LabelLayout = "2006-01"

var monthParam = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Window intervalo cerrado de instantes.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro de la ventana (extremos incluidos).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Period mes calendario resuelto desde el filtro de la petición.
type Period struct {
	Year  int
	Month time.Month
	Label string // "YYYY-MM"
	Start time.Time
	End   time.Time
	Days  int
}

// Window devuelve la ventana [Start, End] del mes.
func (p Period) Window() Window {
	return Window{Start: p.Start, End: p.End}
}

// Location zona horaria en la que se resolvieron los límites.
func (p Period) Location() *time.Location {
	return p.Start.Location()
}

// Labels etiquetas de día "01".."NN" alineadas con las series diarias.
func (p Period) Labels() []string {
	labels := make([]string, p.Days)
	for i := range labels {
		labels[i] = fmt.Sprintf("%02d", i+1)
	}
	return labels
}

// Resolve interpreta el filtro "YYYY-MM". Si está vacío o mal formado (incluido
// un mes fuera de 01..12) usa el mes de now, sin devolver error.
func Resolve(raw string, now time.Time) Period {
	if year, month, ok := parseMonth(raw); ok {
		return Month(year, month, now.Location())
	}
	return Month(now.Year(), now.Month(), now.Location())
}

// Month construye el período de un mes concreto en loc.
func Month(year int, month time.Month, loc *time.Location) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	next := start.AddDate(0, 1, 0)
	return Period{
		Year:  year,
		Month: month,
		Label: start.Format(LabelLayout),
		Start: start,
		End:   next.Add(-time.Nanosecond),
		Days:  next.AddDate(0, 0, -1).Day(),
	}
}

// Today ventana del día de now: 00:00:00 – 23:59:59.999999999.
func Today(now time.Time) Window {
	start := startOfDay(now)
	return Window{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

// ThisWeek ventana de la semana de now, de lunes 00:00 a domingo fin de día.
func ThisWeek(now time.Time) Window {
	offset := (int(now.Weekday()) + 6) % 7 // lunes = 0
	start := startOfDay(now).AddDate(0, 0, -offset)
	return Window{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Nanosecond)}
}

// TrailingMonths ventana móvil desde now menos n meses hasta el fin del mes de
// now. El primer mes queda parcial: con now = 12/03 empieza el 12/03 del año anterior.
func TrailingMonths(now time.Time, n int) Window {
	if n < 1 {
		n = 1
	}
	current := Month(now.Year(), now.Month(), now.Location())
	return Window{Start: now.AddDate(0, -n, 0), End: current.End}
}

// ParseDay interpreta una fecha "YYYY-MM-DD" en loc.
func ParseDay(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, raw, loc)
}

// Days devuelve la ventana que cubre los días from..to completos.
func Days(from, to time.Time) Window {
	return Window{Start: startOfDay(from), End: Today(to).End}
}

func parseMonth(raw string) (int, time.Month, bool) {
	if !monthParam.MatchString(raw) {
		return 0, 0, false
	}
	year, _ := strconv.Atoi(raw[:4])
	month, _ := strconv.Atoi(raw[5:])
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
