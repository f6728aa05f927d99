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
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Stock-ledger-api/internal/application/leave"
	"github.com/jhoicas/Stock-ledger-api/internal/application/production"
	"github.com/jhoicas/Stock-ledger-api/internal/application/serialno"
	"github.com/jhoicas/Stock-ledger-api/internal/application/uom"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/Stock-ledger-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Stock-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/Stock-ledger-api/pkg/config"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	txRunner := postgres.NewTxRunner(pool)

	// Maestro de artículos: Redis delante de PostgreSQL si REDIS_ADDR está definido.
	var items repository.ItemRepository = postgres.NewItemRepository(pool)
	var itemCache uom.ItemCacheInvalidator
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no responde; se continúa sin caché")
		} else {
			c := cache.NewItemCache(items, rdb, time.Duration(cfg.Redis.TTLSec)*time.Second, log)
			items, itemCache = c, c
		}
	}

	ledgerUC := serialno.NewLedgerUseCase(txRunner, items, log)
	serialNoUC := serialno.NewSerialNoUseCase(txRunner, items, log)
	cardUC := serialno.NewCardUseCase(txRunner, infrapdf.NewMarotoCardGenerator())
	leaveUC := leave.NewAllocationUseCase(txRunner, log)
	productionUC := production.NewOrderUseCase(txRunner, items, log)
	uomUC := uom.NewReplaceUseCase(txRunner, itemCache, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.File,
			Path:     "docs",
			Title:    "Stock Ledger API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:     ledgerUC,
		SerialNoUC:   serialNoUC,
		CardUC:       cardUC,
		LeaveUC:      leaveUC,
		ProductionUC: productionUC,
		UOMReplaceUC: uomUC,
		JWTSecret:    cfg.JWT.Secret,
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
