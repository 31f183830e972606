package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/auth"
	"github.com/jhoicas/hospedaje-lider-api/internal/application/documentos"
	"github.com/jhoicas/hospedaje-lider-api/internal/application/ports"
	"github.com/jhoicas/hospedaje-lider-api/internal/infrastructure/backend"
	"github.com/jhoicas/hospedaje-lider-api/internal/infrastructure/postgres"
	"github.com/jhoicas/hospedaje-lider-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/hospedaje-lider-api/internal/interfaces/http"
	"github.com/jhoicas/hospedaje-lider-api/pkg/config"
	"github.com/jhoicas/hospedaje-lider-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	// Almacenamiento de fotos del carnet (opcional)
	var store ports.DocumentStore
	if cfg.Storage.Enabled() {
		r2, err := storage.NewR2Store(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento R2")
		}
		store = r2
	} else {
		log.Warn().Msg("R2 no configurado: las fotos del carnet se guardan tal como llegan")
	}
	docs := documentos.NewService(store)

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	authUC := auth.NewAuthUseCase(usuarioRepo, docs, auth.Config{
		JWTSecret:   cfg.JWT.Secret,
		Issuer:      cfg.JWT.Issuer,
		DefaultRole: cfg.Auth.DefaultRoleOnRegister,
	})

	backendClient := backend.NewClient(backend.Config{
		BaseURL:    cfg.Backend.BaseURL,
		Timeout:    time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		MaxRetries: cfg.Backend.MaxRetries,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Duration(cfg.Backend.TimeoutSeconds+10) * time.Second,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 * 1024 * 1024, // fotos del carnet en base64
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.ReplaceAll(cfg.CORS.AllowedOrigins, " ", ""),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Hospedaje Líder API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:  authUC,
		Backend: backendClient,
		Docs:    docs,
		Log:     log,
		Cookie: httpRouter.CookieConfig{
			Secure: cfg.Auth.CookieSecure,
			Domain: cfg.Auth.CookieDomain,
		},
		RateLimitPerMinute: cfg.Auth.RateLimitPerMinute,
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
