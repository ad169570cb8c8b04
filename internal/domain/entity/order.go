package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados generales de la orden (valores almacenados por la aplicación de gestión).
const (
	OrderStatusInProgress    = "en cours"
	OrderStatusPaid          = "payée"
	OrderStatusPartiallyPaid = "partiellement payée"
	OrderStatusCancelled     = "annulée"
)

// Estados de PAO (preimpresión).
const (
	PrePressStatusInProgress   = "PAO en cours"
	PrePressStatusDone         = "PAO fait"
	PrePressStatusModification = "PAO modification"
)

// Estados de producción.
const (
	ProductionStatusInProgress       = "production en cours"
	ProductionStatusReadyForDelivery = "pour livraison"
)

// ProductionStatuses estados generales que alimentan la cola de producción.
func ProductionStatuses() []string {
	return []string{OrderStatusInProgress, OrderStatusPaid, OrderStatusPartiallyPaid}
}

// Order representa la cabecera de una orden (Commande).
type Order struct {
	ID               string
	OrderDate        time.Time
	Status           string
	PrePressStatus   string
	ProductionStatus string
	OwnerID          string // usuario PAO asignado; vacío si no hay
	ShippingFee      decimal.Decimal
	UpdatedAt        time.Time
}
