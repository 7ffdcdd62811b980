package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/crm-closers/internal/application/auth"
	"github.com/tu-usuario/crm-closers/internal/application/usecase"
	"github.com/tu-usuario/crm-closers/internal/infrastructure/postgres"
	"github.com/tu-usuario/crm-closers/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/crm-closers/internal/interfaces/http"
	"github.com/tu-usuario/crm-closers/pkg/config"
	"github.com/tu-usuario/crm-closers/pkg/logger"
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
		Msg("iniciando aplicación")

	// Los timestamps (reuniones, vencimientos) se interpretan en la zona
	// configurada, no en la del host.
	if loc, err := time.LoadLocation(cfg.App.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Warn().Err(err).Str("tz", cfg.App.Timezone).Msg("zona horaria inválida, se usa la del sistema")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	meetingRepo := postgres.NewMeetingRepository(pool)
	proofRepo := postgres.NewPaymentProofRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	fileStore, err := storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.PublicURL)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de comprobantes")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, clientRepo, meetingRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, proofRepo, meetingRepo)
	meetingUC := usecase.NewMeetingUseCase(meetingRepo)
	paymentUC := usecase.NewPaymentUseCase(proofRepo, clientRepo, fileStore)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Closers API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Comprobantes subidos, servidos como estáticos
	app.Static(cfg.Uploads.PublicURL, cfg.Uploads.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		ClientUC:       clientUC,
		MeetingUC:      meetingUC,
		PaymentUC:      paymentUC,
		NotificationUC: notificationUC,
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
