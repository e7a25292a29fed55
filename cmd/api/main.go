package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"malaeb/internal/config"
	"malaeb/internal/database"
	"malaeb/internal/mailer"
	"malaeb/internal/middleware"
	"malaeb/internal/modules/admin"
	"malaeb/internal/modules/auth"
	"malaeb/internal/modules/catalog"
	"malaeb/internal/modules/reservation"
	"malaeb/internal/notification"
	jwtsvc "malaeb/internal/pkg/jwt"
	"malaeb/internal/realtime"
	"malaeb/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connect", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("database migrate", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	stadiumRepo := repository.NewStadiumRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notifRepo := notification.NewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	signer := realtime.NewSigner(cfg.ChannelSecret)
	hub := realtime.NewHub(signer)

	var mail mailer.Mailer = mailer.NewLog()
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTP(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	}

	notifService := notification.NewService(notifRepo, hub)
	notifHandler := notification.NewHandler(notifService)

	authService := auth.NewService(userRepo, j, mail, notifService, cfg.VerificationPepper, cfg.ResetTokenTTL)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(stadiumRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(reservationRepo, stadiumRepo, paymentRepo, userRepo, notifService)
	reservationHandler := reservation.NewHandler(reservationService)

	adminService := admin.NewService(userRepo)
	adminHandler := admin.NewHandler(adminService)

	realtimeHandler := realtime.NewHandler(hub, signer, j, userRepo)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.GET("/ws", realtimeHandler.ServeWS)

	v1 := r.Group("/api/v1")
	{
		// public
		auth.RegisterRoutes(v1, authHandler)
		catalog.RegisterRoutes(v1, catalogHandler)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			notification.RegisterRoutes(protected, notifHandler)
			realtime.RegisterRoutes(protected, realtimeHandler)
			reservation.RegisterRoutes(protected, reservationHandler)
			admin.RegisterRoutes(protected, adminHandler)
		}
	}

	slog.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
}

func setupLogger(env string) {
	var handler slog.Handler
	if env == "dev" || env == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}
