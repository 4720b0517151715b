package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wb-go/wbf/logger"

	"travel-cms/config"
	"travel-cms/database"
	"travel-cms/errors"
	"travel-cms/handlers"
	"travel-cms/invoice"
	"travel-cms/mailer"
	"travel-cms/media"
	"travel-cms/middleware"
	"travel-cms/router"
	"travel-cms/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	if err := run(cfg); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

func run(cfg *config.Config) error {
	lg, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		config.AppName,
		cfg.Environment(),
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		if err := database.Disconnect(context.Background(), db); err != nil {
			lg.Error("mongo disconnect failed", logger.String("error", err.Error()))
		}
	}()
	lg.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("database", cfg.Mongo.Database),
	)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	store, err := media.NewCloudinary(media.Credentials{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
	})
	if err != nil {
		return err
	}

	letterhead := invoice.DefaultLetterhead()
	renderer := invoice.NewRenderer(letterhead)
	sender := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
	}, lg)

	h := handlers.NewHandler(handlers.Services{
		Tours:      service.NewTourService(database.NewTourRepository(db), lg),
		Travells:   service.NewTravellService(database.NewTravellRepository(db)),
		Pricing:    service.NewPricingService(database.NewPricingRepository(db)),
		HeroImages: service.NewHeroImageService(database.NewHeroImageRepository(db), store, lg),
		Bookings:   service.NewBookingService(database.NewBookingRepository(db), lg),
		Settings:   service.NewSettingsService(database.NewSettingsRepository(db), lg),
		Bills:      service.NewBillService(database.NewBillRepository(db), renderer, sender, letterhead.Phones, lg),
		TourBills:  service.NewTourBillService(database.NewTourBillRepository(db), renderer, sender, letterhead.Phones, lg),
		Auth:       service.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, cfg.Admin.Sign),
		Media:      store,
	}, lg)

	app := fiber.New(fiber.Config{
		AppName:      config.AppName,
		BodyLimit:    50 * 1024 * 1024,
		ErrorHandler: errors.Raise,
	})
	router.SetupRoutes(app, h, router.Options{
		Logger:         lg,
		AllowedOrigins: cfg.Server.AllowedOrigins(),
		Admin:          middleware.Authorize(cfg.Admin.Sign),
		AccessLog:      true,
	})

	errCh := make(chan error, 1)
	go func() {
		lg.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("port", cfg.Server.Port),
			logger.String("environment", cfg.Environment()),
		)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		lg.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	lg.Info("app stopped")
	return nil
}
