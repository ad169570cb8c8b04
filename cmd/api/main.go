package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // zonas IANA sin depender del sistema

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Pedidos-dashboard/internal/application/analytics"
	infrapdf "github.com/jhoicas/Pedidos-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/Pedidos-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Pedidos-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Pedidos-dashboard/pkg/config"
	"github.com/jhoicas/Pedidos-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	loc := cfg.App.Location()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", loc.String()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, loc.String())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	log.Debug().
		Int32("max_conns", pool.Config().MaxConns).
		Int("queue_limit", cfg.Dashboard.QueueLimit).
		Str("report_language", cfg.Report.Language).
		Msg("pool PostgreSQL listo")

	// Reloj en la zona de la aplicación: los límites de día, semana y mes se calculan en ella.
	now := func() time.Time { return time.Now().In(loc) }

	statusRepo := postgres.NewStatusRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool, loc)

	aggregator := analytics.NewStatusAggregator(statusRepo)
	dashboardUC := analytics.NewDashboardUseCase(aggregator, salesRepo, now, cfg.Dashboard.QueueLimit)
	statisticsUC := analytics.NewStatisticsUseCase(salesRepo, now)

	// PDF: informe de estadísticas
	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.Report.Language, cfg.Report.Currency)
	reportUC := analytics.NewReportUseCase(statisticsUC, reportGenerator, now)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pedidos Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Dashboard:  dashboardUC,
		Statistics: statisticsUC,
		Report:     reportUC,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
