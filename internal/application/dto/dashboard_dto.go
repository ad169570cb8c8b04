package dto

// CommercialDashboardDTO respuesta de GET /api/dashboard/commercial.
type CommercialDashboardDTO struct {
	SelectedMonth string           `json:"selected_month"` // YYYY-MM
	Counts        map[string]int   `json:"counts"`         // cotizaciones del mes por estado
	ChartLabels   []string         `json:"chart_labels"`   // "01".."NN"
	ChartSeries   map[string][]int `json:"chart_series"`   // por estado, alineado con ChartLabels
}

// PaoDashboardDTO respuesta de GET /api/dashboard/pao.
type PaoDashboardDTO struct {
	// Tarjetas del día (fecha de la orden = hoy)
	WorkInProgressToday   int `json:"work_in_progress_today"`
	WorkDoneToday         int `json:"work_done_today"`
	WorkModificationToday int `json:"work_modification_today"`

	// Lunes → domingo, los tres estados PAO
	WorksThisWeek int `json:"works_this_week"`

	// Gráfico "PAO fait" por día del mes seleccionado
	SelectedMonth string   `json:"selected_month"`
	ChartLabels   []string `json:"chart_labels"`
	ChartValues   []int    `json:"chart_values"`
}

// ProductionDashboardDTO respuesta de GET /api/dashboard/production.
type ProductionDashboardDTO struct {
	WorkInProgressToday       int `json:"work_in_progress_today"`
	WorkReadyForDeliveryToday int `json:"work_ready_for_delivery_today"`

	// Carga actual (órdenes en cours / payée / partiellement payée)
	OrdersInProduction int64             `json:"orders_in_production"`
	ItemsInProduction  int64             `json:"items_in_production"`
	ProductionQueue    []QueueProductDTO `json:"production_queue"`

	// Gráfico "pour livraison" por día del mes seleccionado
	SelectedMonth string   `json:"selected_month"`
	ChartLabels   []string `json:"chart_labels"`
	ChartValues   []int    `json:"chart_values"`
}
