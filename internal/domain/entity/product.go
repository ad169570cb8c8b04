package entity

import "github.com/shopspring/decimal"

// Product producto del catálogo con su precio unitario.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}
