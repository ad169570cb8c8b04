package http

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-dashboard/internal/application/analytics"
	"github.com/jhoicas/Pedidos-dashboard/internal/application/dto"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain"
)

var (
	_ StatisticsService = (*analytics.StatisticsUseCase)(nil)
	_ ReportService     = (*analytics.ReportUseCase)(nil)
)

// StatisticsService lo implementa *analytics.StatisticsUseCase.
type StatisticsService interface {
	GetSalesTotal(ctx context.Context, ownerID string, req dto.SalesTotalRequest) (*dto.SalesTotalDTO, error)
	MonthlyStatistics(ctx context.Context, ownerID string) ([]dto.PeriodStatDTO, error)
	YearlyStatistics(ctx context.Context, ownerID string) ([]dto.PeriodStatDTO, error)
	ProductionQueue(ctx context.Context, limit int, ownerID string) ([]dto.QueueProductDTO, error)
	AvailablePeriods(ctx context.Context, ownerID string) (*dto.AvailablePeriodsDTO, error)
}

// ReportService lo implementa *analytics.ReportUseCase.
type ReportService interface {
	StatisticsPDF(ctx context.Context, ownerID string) (pdfBytes []byte, filename string, err error)
}

// StatisticsHandler endpoints de estadísticas de ventas. Los roles distintos de
// admin solo ven sus propias órdenes.
type StatisticsHandler struct {
	uc     StatisticsService
	report ReportService
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc StatisticsService, report ReportService) *StatisticsHandler {
	return &StatisticsHandler{uc: uc, report: report}
}

func (h *StatisticsHandler) owner(c *fiber.Ctx) (string, error) {
	return ownerScope(c, c.Query("owner_id"), true)
}

// Sales godoc
// @Summary      Total de ventas en un rango
// @Description  Σ(cantidad × precio) + gastos de envío de las órdenes no anuladas con fecha en [start, end].
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        start     query  string  false  "Inicio YYYY-MM-DD. Default: primer día del mes."
// @Param        end       query  string  false  "Fin YYYY-MM-DD (incluido). Default: último día del mes."
// @Param        owner_id  query  string  false  "Solo admin: filtra por propietario (UUID)."
// @Success      200  {object}  dto.SalesTotalDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/statistics/sales [get]
func (h *StatisticsHandler) Sales(c *fiber.Ctx) error {
	var req dto.SalesTotalRequest
	if err := c.QueryParser(&req); err != nil {
		return respondError(c, errInvalidQuery)
	}
	ownerID, err := ownerScope(c, req.OwnerID, true)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetSalesTotal(c.Context(), ownerID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Estadísticas mensuales
// @Description  Órdenes y monto por mes de los últimos 12 meses, ascendente.
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        owner_id  query  string  false  "Solo admin: filtra por propietario (UUID)."
// @Success      200  {array}   dto.PeriodStatDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/statistics/monthly [get]
func (h *StatisticsHandler) Monthly(c *fiber.Ctx) error {
	ownerID, err := h.owner(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.MonthlyStatistics(c.Context(), ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Yearly godoc
// @Summary      Estadísticas anuales
// @Description  Órdenes y monto por año, del más reciente al más antiguo.
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        owner_id  query  string  false  "Solo admin: filtra por propietario (UUID)."
// @Success      200  {array}   dto.PeriodStatDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/statistics/yearly [get]
func (h *StatisticsHandler) Yearly(c *fiber.Ctx) error {
	ownerID, err := h.owner(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.YearlyStatistics(c.Context(), ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Periods godoc
// @Summary      Años y meses con órdenes
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        owner_id  query  string  false  "Solo admin: filtra por propietario (UUID)."
// @Success      200  {object}  dto.AvailablePeriodsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/statistics/periods [get]
func (h *StatisticsHandler) Periods(c *fiber.Ctx) error {
	ownerID, err := h.owner(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AvailablePeriods(c.Context(), ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductionQueue godoc
// @Summary      Cola de producción
// @Description  Productos con más unidades en órdenes en curso o pagadas.
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        limit     query  int     false  "Máx. productos (default 10, max 100)."
// @Param        owner_id  query  string  false  "Solo admin: filtra por propietario (UUID)."
// @Success      200  {array}   dto.QueueProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/statistics/production-queue [get]
func (h *StatisticsHandler) ProductionQueue(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(c, fmt.Errorf("%w: limit debe ser un entero", domain.ErrInvalidInput))
		}
		limit = n
	}
	ownerID, err := h.owner(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ProductionQueue(c.Context(), limit, ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Informe PDF de estadísticas
// @Description  Tablas mensual y anual y cola de producción en A4.
// @Tags         statistics
// @Security     Bearer
// @Produce      application/pdf
// @Param        owner_id  query  string  false  "Solo admin: filtra por propietario (UUID)."
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/statistics/report.pdf [get]
func (h *StatisticsHandler) Report(c *fiber.Ctx) error {
	ownerID, err := h.owner(c)
	if err != nil {
		return respondError(c, err)
	}
	pdf, filename, err := h.report.StatisticsPDF(c.Context(), ownerID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
