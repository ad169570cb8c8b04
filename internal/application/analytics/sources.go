package analytics

import (
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/entity"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/repository"
)

// Orígenes de conteo de cada tablero. Todos filtran por la fecha de creación
// (quotes.created_at / orders.order_date), también el tablero de producción.
var (
	QuoteSource = repository.Source{
		Entity: repository.EntityQuote,
		Status: repository.StatusGeneral,
		Date:   repository.DateCreated,
	}
	PrePressSource = repository.Source{
		Entity: repository.EntityOrder,
		Status: repository.StatusPrePress,
		Date:   repository.DateCreated,
	}
	ProductionSource = repository.Source{
		Entity: repository.EntityOrder,
		Status: repository.StatusProduction,
		Date:   repository.DateCreated,
	}
)

// CommercialStatuses estados de cotización del tablero comercial, en orden de presentación.
func CommercialStatuses() []string {
	return []string{
		entity.QuoteStatusSent,
		entity.QuoteStatusProofInProduction,
		entity.QuoteStatusFollowUp,
		entity.QuoteStatusLost,
	}
}

// PrePressStatuses estados PAO que cuentan como trabajo de la semana.
func PrePressStatuses() []string {
	return []string{
		entity.PrePressStatusInProgress,
		entity.PrePressStatusDone,
		entity.PrePressStatusModification,
	}
}

// ProductionBoardStatuses estados de producción de las tarjetas del día.
func ProductionBoardStatuses() []string {
	return []string{
		entity.ProductionStatusInProgress,
		entity.ProductionStatusReadyForDelivery,
	}
}
