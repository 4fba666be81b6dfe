package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appdelivery "github.com/jhoicas/Inventario-entregas/internal/application/delivery"
	"github.com/jhoicas/Inventario-entregas/internal/application/inventory"
	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/collections"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/Inventario-entregas/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/Inventario-entregas/internal/interfaces/http"
	"github.com/jhoicas/Inventario-entregas/pkg/config"
	"github.com/jhoicas/Inventario-entregas/pkg/logger"
	"github.com/jhoicas/Inventario-entregas/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("notify", cfg.Notify.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	collectionStore, closeStore, err := store.Open(ctx, cfg, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}
	defer closeStore()

	// Notificaciones: siempre a log; con kafka además se publican en el topic.
	var notifier ports.Notifier = notify.NewLogSink(log)
	if cfg.Notify.Driver == config.NotifyKafka {
		kafkaSink := notify.NewKafkaSink(notify.NewKafkaWriter(cfg.Kafka, log), log)
		defer func() {
			if err := kafkaSink.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar writer kafka")
			}
		}()
		notifier = notify.Fanout{notifier, kafkaSink}
	}

	formatter, err := money.NewFormatter(cfg.Locale.Currency, cfg.Locale.Locale)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración regional")
	}

	ledger, err := inventory.LoadLedger(ctx, collectionStore, notifier)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar libro de stock")
	}

	customerDirectory := collections.NewCustomerDirectory(collectionStore)
	salesFeed := collections.NewSalesFeed(collectionStore)
	tracker, err := appdelivery.LoadTracker(ctx, collectionStore, notifier, log.Component("deliveries"),
		appdelivery.WithDeliveredHook(appdelivery.NewCustomerStatusHook(customerDirectory)),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar entregas")
	}

	replenishmentUC := inventory.NewReplenishmentUseCase(ledger)
	reportUC := inventory.NewReportUseCase(ledger, infrapdf.NewMarotoValuationReport(formatter, ""))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario y Entregas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:        ledger,
		Replenishment: replenishmentUC,
		Report:        reportUC,
		Tracker:       tracker,
		SalesFeed:     salesFeed,
		Money:         formatter,
		Logger:        log,
		ServiceName:   cfg.App.Name,
		StoreDriver:   cfg.Store.Driver,
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
