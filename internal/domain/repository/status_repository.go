package repository

import (
	"context"

	"github.com/jhoicas/Pedidos-dashboard/internal/domain/period"
)

// Entity entidad sobre la que cuenta un tablero.
type Entity string

const (
	EntityOrder Entity = "order"
	EntityQuote Entity = "quote"
)

// StatusField campo de estado que se agrupa.
type StatusField string

const (
	StatusGeneral    StatusField = "status"
	StatusPrePress   StatusField = "prepress_status"
	StatusProduction StatusField = "production_status"
)

// DateField campo de fecha que limita la ventana.
type DateField string

const (
	DateCreated DateField = "created" // orders.order_date / quotes.created_at
	DateUpdated DateField = "updated" // orders.updated_at
)

// Source describe qué se cuenta: entidad, campo de estado y campo de fecha.
// Las implementaciones traducen cada combinación a columnas concretas y deben
// rechazar las que no conocen.
type Source struct {
	Entity Entity
	Status StatusField
	Date   DateField
}

// StatusFilter predicado común de conteo y lectura de filas.
type StatusFilter struct {
	Source   Source
	Statuses []string
	Window   period.Window
	OwnerID  string // vacío = todos
}

// StatusRow fila cruda (id, fecha, estado). Timestamp conserva el valor tal como
// lo hidrata el driver; se normaliza en la capa de aplicación.
type StatusRow struct {
	ID        string
	Timestamp any
	Status    string
}

// StatusRepository consultas read-only de conteo por estado.
type StatusRepository interface {
	// CountByStatus devuelve el número de filas por estado dentro de la ventana.
	// Los estados sin filas pueden no aparecer en el mapa.
	CountByStatus(ctx context.Context, f StatusFilter) (map[string]int, error)

	// FetchRows devuelve las filas que cumplen el filtro.
	FetchRows(ctx context.Context, f StatusFilter) ([]StatusRow, error)
}
