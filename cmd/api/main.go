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

	"github.com/recibospro/recibos-api/internal/application/auth"
	"github.com/recibospro/recibos-api/internal/application/receipts"
	"github.com/recibospro/recibos-api/internal/application/subscription"
	"github.com/recibospro/recibos-api/internal/application/usecase"
	"github.com/recibospro/recibos-api/internal/infrastructure/postgres"
	"github.com/recibospro/recibos-api/internal/infrastructure/render"
	httpRouter "github.com/recibospro/recibos-api/internal/interfaces/http"
	"github.com/recibospro/recibos-api/pkg/config"
	"github.com/recibospro/recibos-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	quota := subscription.NewEnforcer()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, txRunner, quota)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, companyRepo)
	createReceiptUC := receipts.NewCreateReceiptUseCase(txRunner, quota)
	listReceiptsUC := receipts.NewListReceiptsUseCase(receiptRepo)
	subscriptionUC := subscription.NewUseCase(userRepo, companyRepo, receiptRepo)

	// Renderizador headless: Chrome vive lo que vive la app, cada render usa
	// su propio tab.
	templateEngine, err := render.NewTemplateEngine()
	if err != nil {
		log.Fatal().Err(err).Msg("plantilla de recibo")
	}
	chromeRenderer := render.NewChromeRenderer(cfg.Render, log.Zerolog())
	defer chromeRenderer.Close()
	receiptPDFUC := receipts.NewPDFUseCase(receiptRepo, templateEngine, chromeRenderer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // el render del PDF puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Recibos Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		EmployeeUC:     employeeUC,
		CreateReceipt:  createReceiptUC,
		ListReceipts:   listReceiptsUC,
		ReceiptPDF:     receiptPDFUC,
		SubscriptionUC: subscriptionUC,
		JWTSecret:      cfg.JWT.Secret,
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
