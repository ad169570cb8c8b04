package dto

import "github.com/shopspring/decimal"

// SalesTotalRequest parámetros de GET /api/statistics/sales.
type SalesTotalRequest struct {
	Start   string `query:"start"` // YYYY-MM-DD; por defecto primer día del mes actual
	End     string `query:"end"`   // YYYY-MM-DD; por defecto último día del mes actual
	OwnerID string `query:"owner_id"`
}

// SalesTotalDTO total vendido en el rango (líneas + envío, sin anuladas).
type SalesTotalDTO struct {
	Start        string          `json:"start"`
	End          string          `json:"end"`
	ItemsTotal   decimal.Decimal `json:"items_total"`
	ShippingFees decimal.Decimal `json:"shipping_fees"`
	Total        decimal.Decimal `json:"total"`
	OrderCount   int             `json:"order_count"`
}

// PeriodStatDTO fila de las estadísticas mensuales o anuales.
type PeriodStatDTO struct {
	Period      string          `json:"period"` // YYYY-MM o YYYY
	OrderCount  int             `json:"order_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// QueueProductDTO producto en la cola de producción.
type QueueProductDTO struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// AvailablePeriodsDTO años y meses con órdenes, del más reciente al más antiguo.
type AvailablePeriodsDTO struct {
	Years  []string `json:"years"`
	Months []string `json:"months"`
}

// StatisticsReportDTO contenido del informe PDF.
type StatisticsReportDTO struct {
	Title           string
	GeneratedAt     string
	Monthly         []PeriodStatDTO
	Yearly          []PeriodStatDTO
	ProductionQueue []QueueProductDTO
}
