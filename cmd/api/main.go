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

	"github.com/dgarciat/tirestock-api/internal/application/auth"
	"github.com/dgarciat/tirestock-api/internal/application/deliveries"
	"github.com/dgarciat/tirestock-api/internal/application/inventory"
	"github.com/dgarciat/tirestock-api/internal/application/reorders"
	"github.com/dgarciat/tirestock-api/internal/application/transactions"
	"github.com/dgarciat/tirestock-api/internal/application/warehouses"
	"github.com/dgarciat/tirestock-api/internal/infrastructure/collections"
	"github.com/dgarciat/tirestock-api/internal/infrastructure/jsonstore"
	"github.com/dgarciat/tirestock-api/internal/infrastructure/postgres"
	httpRouter "github.com/dgarciat/tirestock-api/internal/interfaces/http"
	"github.com/dgarciat/tirestock-api/pkg/config"
	"github.com/dgarciat/tirestock-api/pkg/logger"
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
		Str("storage", cfg.Storage.Mode).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Motor de persistencia de colecciones según STORAGE_MODE: archivos
	// JSON en DATA_DIR o una tabla jsonb en PostgreSQL.
	var store collections.DocumentStore
	switch cfg.Storage.Mode {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgStore, err := postgres.NewStore(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("preparar tabla de colecciones")
		}
		store = pgStore
	default:
		jsStore, err := jsonstore.Open(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir directorio de datos")
		}
		store = jsStore
	}

	if err := collections.EnsureDefaults(store); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos de referencia")
	}

	txRunner := collections.NewTxRunner()
	inventoryRepo := collections.NewInventoryRepo(store)
	deliveryRepo := collections.NewDeliveryRepo(store)
	supplierRepo := collections.NewSupplierRepo(store)
	warehouseRepo := collections.NewWarehouseRepo(store)
	transactionRepo := collections.NewTransactionRepo(store)
	reorderRepo := collections.NewReorderRepo(store)
	userRepo := collections.NewUserRepo(store)

	inventoryUC := inventory.NewUseCase(txRunner, inventoryRepo, transactionRepo, log)
	deliveriesUC := deliveries.NewUseCase(txRunner, deliveryRepo, supplierRepo, inventoryUC, transactionRepo, log)
	transactionUC := transactions.NewUseCase(txRunner, transactionRepo, log)
	reorderUC := reorders.NewUseCase(txRunner, reorderRepo, transactionRepo, log)
	warehouseUC := warehouses.NewUseCase(txRunner, warehouseRepo, inventoryRepo)
	authUC := auth.NewUseCase(txRunner, userRepo, cfg.JWT, log)

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
		Title:    "TireStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:   inventoryUC,
		DeliveriesUC:  deliveriesUC,
		TransactionUC: transactionUC,
		ReorderUC:     reorderUC,
		WarehouseUC:   warehouseUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
