package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DashboardRequest parámetros comunes de los tableros.
type DashboardRequest struct {
	Month   string `query:"month"`    // YYYY-MM; vacío o inválido = mes actual
	OwnerID string `query:"owner_id"` // solo admin; UUID del usuario asignado
}
