package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/hubber-api/internal/application/auth"
	"github.com/jhoicas/hubber-api/internal/application/billing"
	"github.com/jhoicas/hubber-api/internal/application/usecase"
	"github.com/jhoicas/hubber-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/hubber-api/internal/infrastructure/stripegw"
	httpRouter "github.com/jhoicas/hubber-api/internal/interfaces/http"
	"github.com/jhoicas/hubber-api/pkg/config"
	"github.com/jhoicas/hubber-api/pkg/logger"
	hubmetrics "github.com/jhoicas/hubber-api/prometheus"
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
	mongoClient, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()
	db := mongoClient.Database(cfg.Mongo.Database)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("creación de índices")
	}

	hubmetrics.InitMetrics(cfg.Metrics.Prefix)

	userRepo := mongodb.NewUserRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	jobRepo := mongodb.NewJobRepository(db)

	companyUC := usecase.NewCompanyUseCase(companyRepo, userRepo, clientRepo, jobRepo, cfg.Portal.BaseURL)
	clientUC := usecase.NewClientUseCase(clientRepo, companyRepo)
	jobUC := usecase.NewJobUseCase(jobRepo, companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	stripeGateway := stripegw.New(cfg.Stripe.SecretKey)
	subscriptionUC := billing.NewSubscriptionUseCase(userRepo, stripeGateway, cfg.Stripe.PriceTiers())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hubber API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:      companyUC,
		ClientUC:       clientUC,
		JobUC:          jobUC,
		UserUC:         userUC,
		AuthUC:         authUC,
		SubscriptionUC: subscriptionUC,
		JWTSecret:      cfg.JWT.Secret,
		WebhookSecret:  cfg.Stripe.WebhookSecret,
		Logger:         log,
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
