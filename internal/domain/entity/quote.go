package entity

import "time"

// Estados de cotización (Devis) seguidos por el tablero comercial.
const (
	QuoteStatusSent              = "envoyé"
	QuoteStatusProofInProduction = "BAT production"
	QuoteStatusFollowUp          = "relance"
	QuoteStatusLost              = "perdu"
	QuoteStatusAccepted          = "accepté"
)

// Quote cotización previa a la orden.
type Quote struct {
	ID        string
	CreatedAt time.Time
	Status    string
	OwnerID   string
}
