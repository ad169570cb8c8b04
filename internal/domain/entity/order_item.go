package entity

import "github.com/shopspring/decimal"

// OrderItem línea de una orden: una cantidad de un producto.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
}

// Subtotal devuelve quantity × precio unitario del producto.
func (i OrderItem) Subtotal(unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
