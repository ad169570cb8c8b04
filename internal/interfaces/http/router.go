package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-dashboard/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Dashboard  DashboardService
	Statistics StatisticsService
	Report     ReportService
	JWTSecret  string
	JWTIssuer  string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Tableros: cada rol ve el suyo, admin todos
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	dashboard.Get("/commercial", RequireRole(entity.RoleAdmin, entity.RoleCommercial), dashboardHandler.Commercial)
	dashboard.Get("/pao", RequireRole(entity.RoleAdmin, entity.RolePAO), dashboardHandler.Pao)
	dashboard.Get("/production", RequireRole(entity.RoleAdmin, entity.RoleProduction), dashboardHandler.Production)

	// Estadísticas de ventas: el propietario de una orden es su usuario PAO,
	// por eso solo admin (global) y pao (sus órdenes) tienen acceso.
	statistics := api.Group("/statistics", RequireRole(entity.RoleAdmin, entity.RolePAO))
	statisticsHandler := NewStatisticsHandler(deps.Statistics, deps.Report)
	statistics.Get("/sales", statisticsHandler.Sales)
	statistics.Get("/monthly", statisticsHandler.Monthly)
	statistics.Get("/yearly", statisticsHandler.Yearly)
	statistics.Get("/periods", statisticsHandler.Periods)
	statistics.Get("/production-queue", statisticsHandler.ProductionQueue)
	statistics.Get("/report.pdf", statisticsHandler.Report)
}
