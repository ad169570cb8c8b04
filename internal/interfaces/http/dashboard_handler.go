package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-dashboard/internal/application/analytics"
	"github.com/jhoicas/Pedidos-dashboard/internal/application/dto"
)

var _ DashboardService = (*analytics.DashboardUseCase)(nil)

// DashboardService lo implementa *analytics.DashboardUseCase.
type DashboardService interface {
	Commercial(ctx context.Context, month, ownerID string) (*dto.CommercialDashboardDTO, error)
	Pao(ctx context.Context, month, ownerID string) (*dto.PaoDashboardDTO, error)
	Production(ctx context.Context, month, ownerID string) (*dto.ProductionDashboardDTO, error)
}

// DashboardHandler maneja los tableros por rol.
type DashboardHandler struct {
	uc DashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc DashboardService) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// dashboardRequest lee ?month y ?owner_id. Un mes mal formado no es error: el
// caso de uso cae en el mes actual.
func dashboardRequest(c *fiber.Ctx) (month, ownerID string, err error) {
	var req dto.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return "", "", errInvalidQuery
	}
	ownerID, err = ownerScope(c, req.OwnerID, false)
	if err != nil {
		return "", "", err
	}
	return req.Month, ownerID, nil
}

// Commercial godoc
// @Summary      Tablero comercial
// @Description  Cotizaciones del mes por estado (envoyé, BAT production, relance, perdu) y su serie diaria.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        month     query  string  false  "Mes YYYY-MM. Default: mes actual."
// @Param        owner_id  query  string  false  "Solo admin: filtra por propietario (UUID)."
// @Success      200  {object}  dto.CommercialDashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/commercial [get]
func (h *DashboardHandler) Commercial(c *fiber.Ctx) error {
	month, ownerID, err := dashboardRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Commercial(c.Context(), month, ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pao godoc
// @Summary      Tablero PAO
// @Description  Trabajos PAO de hoy por estado, total de la semana y gráfico mensual de "PAO fait".
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        month     query  string  false  "Mes YYYY-MM. Default: mes actual."
// @Param        owner_id  query  string  false  "Solo admin: filtra por propietario (UUID)."
// @Success      200  {object}  dto.PaoDashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/pao [get]
func (h *DashboardHandler) Pao(c *fiber.Ctx) error {
	month, ownerID, err := dashboardRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Pao(c.Context(), month, ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Production godoc
// @Summary      Tablero de producción
// @Description  Trabajos de hoy, carga de producción, cola por producto y gráfico mensual de "pour livraison".
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        month     query  string  false  "Mes YYYY-MM. Default: mes actual."
// @Param        owner_id  query  string  false  "Solo admin: filtra por propietario (UUID)."
// @Success      200  {object}  dto.ProductionDashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/production [get]
func (h *DashboardHandler) Production(c *fiber.Ctx) error {
	month, ownerID, err := dashboardRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Production(c.Context(), month, ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
