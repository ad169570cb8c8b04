package analytics_test

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-dashboard/internal/domain/entity"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// memStore: implementación en memoria de StatusRepository y SalesRepository.
//
// OrderTotals aplica ventana y propietario pero NO ExcludeStatuses: la exclusión
// de órdenes anuladas se verifica en el caso de uso.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	orders   []entity.Order
	items    []entity.OrderItem
	products map[string]entity.Product
	quotes   []entity.Quote
	loc      *time.Location
	err      error

	// hydrate decide cómo llega la fecha en FetchRows (por defecto time.Time).
	hydrate func(i int, t time.Time) any
}

var (
	_ repository.StatusRepository = (*memStore)(nil)
	_ repository.SalesRepository  = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{products: map[string]entity.Product{}, loc: time.UTC}
}

func (m *memStore) addProduct(id, name string, price string) {
	m.products[id] = entity.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func (m *memStore) addOrder(o entity.Order, items ...entity.OrderItem) {
	m.orders = append(m.orders, o)
	for _, it := range items {
		it.OrderID = o.ID
		m.items = append(m.items, it)
	}
}

type statusRecord struct {
	id     string
	date   time.Time
	status string
	owner  string
}

func (m *memStore) records(src repository.Source) []statusRecord {
	var out []statusRecord
	if src.Entity == repository.EntityQuote {
		for _, q := range m.quotes {
			out = append(out, statusRecord{q.ID, q.CreatedAt, q.Status, q.OwnerID})
		}
		return out
	}
	for _, o := range m.orders {
		date := o.OrderDate
		if src.Date == repository.DateUpdated {
			date = o.UpdatedAt
		}
		status := o.Status
		switch src.Status {
		case repository.StatusPrePress:
			status = o.PrePressStatus
		case repository.StatusProduction:
			status = o.ProductionStatus
		}
		out = append(out, statusRecord{o.ID, date, status, o.OwnerID})
	}
	return out
}

func (m *memStore) matching(f repository.StatusFilter) []statusRecord {
	wanted := map[string]bool{}
	for _, s := range f.Statuses {
		wanted[s] = true
	}
	var out []statusRecord
	for _, r := range m.records(f.Source) {
		if !wanted[r.status] || !f.Window.Contains(r.date) {
			continue
		}
		if f.OwnerID != "" && r.owner != f.OwnerID {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (m *memStore) CountByStatus(_ context.Context, f repository.StatusFilter) (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := map[string]int{}
	for _, r := range m.matching(f) {
		out[r.status]++
	}
	return out, nil
}

func (m *memStore) FetchRows(_ context.Context, f repository.StatusFilter) ([]repository.StatusRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []repository.StatusRow
	for i, r := range m.matching(f) {
		var ts any = r.date
		if m.hydrate != nil {
			ts = m.hydrate(i, r.date)
		}
		out = append(out, repository.StatusRow{ID: r.id, Timestamp: ts, Status: r.status})
	}
	return out, nil
}

func (m *memStore) OrderTotals(_ context.Context, f repository.SalesFilter) ([]repository.OrderTotalsRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []repository.OrderTotalsRow
	for _, o := range m.orders {
		if f.Window != nil && !f.Window.Contains(o.OrderDate) {
			continue
		}
		if f.OwnerID != "" && o.OwnerID != f.OwnerID {
			continue
		}
		items := decimal.Zero
		for _, it := range m.items {
			if it.OrderID == o.ID {
				items = items.Add(it.Subtotal(m.products[it.ProductID].Price))
			}
		}
		out = append(out, repository.OrderTotalsRow{
			OrderID:     o.ID,
			OrderDate:   o.OrderDate,
			Status:      o.Status,
			ShippingFee: o.ShippingFee,
			ItemsTotal:  items,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.Before(out[j].OrderDate) })
	return out, nil
}

func (m *memStore) ordersIn(statuses []string, ownerID string) map[string]bool {
	wanted := map[string]bool{}
	for _, s := range statuses {
		wanted[s] = true
	}
	ids := map[string]bool{}
	for _, o := range m.orders {
		if wanted[o.Status] && (ownerID == "" || o.OwnerID == ownerID) {
			ids[o.ID] = true
		}
	}
	return ids
}

func (m *memStore) ProductionQueue(_ context.Context, statuses []string, ownerID string, limit int) ([]repository.ProductQueueRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := m.ordersIn(statuses, ownerID)
	qty := map[string]int64{}
	for _, it := range m.items {
		if ids[it.OrderID] {
			qty[it.ProductID] += int64(it.Quantity)
		}
	}
	var out []repository.ProductQueueRow
	for pid, q := range qty {
		out = append(out, repository.ProductQueueRow{ProductID: pid, ProductName: m.products[pid].Name, TotalQuantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalQuantity != out[j].TotalQuantity {
			return out[i].TotalQuantity > out[j].TotalQuantity
		}
		return out[i].ProductName < out[j].ProductName
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) CountOrders(_ context.Context, statuses []string, ownerID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.ordersIn(statuses, ownerID)), nil
}

func (m *memStore) SumItems(_ context.Context, statuses []string, ownerID string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	ids := m.ordersIn(statuses, ownerID)
	var n int64
	for _, it := range m.items {
		if ids[it.OrderID] {
			n += int64(it.Quantity)
		}
	}
	return n, nil
}

func (m *memStore) OrderMonths(_ context.Context, ownerID string) ([]time.Time, error) {
	if m.err != nil {
		return nil, m.err
	}
	seen := map[time.Time]bool{}
	var out []time.Time
	for _, o := range m.orders {
		if ownerID != "" && o.OwnerID != ownerID {
			continue
		}
		local := o.OrderDate.In(m.loc)
		month := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, time.UTC)
		if !seen[month] {
			seen[month] = true
			out = append(out, month)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// rotatingHydration alterna las formas en que el driver puede entregar la fecha.
func rotatingHydration(i int, t time.Time) any {
	switch i % 4 {
	case 0:
		return t
	case 1:
		return pgtype.Timestamptz{Time: t, Valid: true}
	case 2:
		return map[string]any{"date": t.Format("2006-01-02 15:04:05.000000"), "timezone": t.Location().String()}
	default:
		return t.Format(time.RFC3339)
	}
}
