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

	appdoc "github.com/jhoicas/gestion-comercial/internal/application/document"
	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
	"github.com/jhoicas/gestion-comercial/internal/application/notify"
	"github.com/jhoicas/gestion-comercial/internal/infrastructure/mailer"
	"github.com/jhoicas/gestion-comercial/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion-comercial/internal/interfaces/http"
	"github.com/jhoicas/gestion-comercial/pkg/config"
	"github.com/jhoicas/gestion-comercial/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewWarehouseStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	paymentRepo := postgres.NewTreasuryPaymentRepository(pool)
	bankAccountRepo := postgres.NewBankAccountRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Notificador de alertas: nil si no hay SMTP configurado; el emisor lo
	// tolera y simplemente no alerta.
	var notifier notify.Notifier
	if n := mailer.New(cfg.SMTP); n != nil {
		notifier = n
	}
	lowStock := notify.NewLowStockEmitter(notifier, log, 0)

	stockLedger := ledger.NewStockLedger(lowStock)
	treasuryLedger := ledger.NewTreasuryLedger()
	paymentDerivation := ledger.NewPaymentDerivation(treasuryLedger, contactRepo)

	coordinator := appdoc.NewCoordinator(
		txRunner, stockLedger, paymentDerivation,
		productRepo, warehouseRepo, contactRepo, documentRepo,
		log,
	)
	queries := ledger.NewQueryUseCase(productRepo, stockRepo, movementRepo, paymentRepo, bankAccountRepo)
	manual := ledger.NewManualMovementUseCase(txRunner, stockLedger, productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión Comercial API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Coordinator: coordinator,
		Queries:     queries,
		Manual:      manual,
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
