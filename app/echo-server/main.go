package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pterostore/app/echo-server/router"
	"pterostore/business/orders"
	"pterostore/business/paymentproof"
	"pterostore/business/product"
	serverService "pterostore/business/server"
	settingsService "pterostore/business/settings"
	userService "pterostore/business/user"
	"pterostore/internal/middleware"
	psqlRepo "pterostore/internal/repository/postgres"
	"pterostore/internal/repository/uploads"
	"pterostore/internal/rest"
	"pterostore/pkg/config"
	"pterostore/pkg/database"
	"pterostore/pkg/logger"
	"pterostore/pkg/metrics"
	"pterostore/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Pterodactyl Store API", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	orderRepo := psqlRepo.NewOrderRepository(db)
	serverRepo := psqlRepo.NewServerRepository(db)
	settingsRepo := psqlRepo.NewSettingsRepository(db)
	proofStore := uploads.NewFileRepository(uploads.UploadConfig{
		Dir:        cfg.Upload.Dir,
		PublicPath: cfg.Upload.PublicPath,
	})

	// Init service
	users := userService.NewUserService(userRepo, validate)
	products := product.NewProductService(productRepo)
	orderSvc := orders.NewOrdersService(orderRepo, productRepo, userRepo)
	proofSvc := paymentproof.NewProofService(orderRepo, proofStore)
	servers := serverService.NewServerService(serverRepo)
	settings := settingsService.NewSettingsService(settingsRepo)

	// Init handler
	userHandler := rest.NewUserHandler(users)
	productHandler := rest.NewProductHandler(products)
	ordersHandler := rest.NewOrdersHandler(orderSvc)
	proofHandler := rest.NewPaymentProofHandler(proofSvc)
	serverHandler := rest.NewServerHandler(servers)
	settingsHandler := rest.NewSettingsHandler(settings)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Uploaded payment proofs are served back on their recorded public path.
	e.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	authRequired := middleware.Auth()

	// Setup routes
	api := e.Group("")
	router.SetupAuthRoutes(api, userHandler, authRequired)
	router.SetupProductRoutes(api, productHandler)
	router.SetupOrderRoutes(api, ordersHandler, proofHandler, authRequired)
	router.SetupUserRoutes(api, userHandler, ordersHandler, serverHandler, authRequired)
	router.SetupSettingsRoutes(api, settingsHandler)
	router.SetupMetricsRoute(e)

	// Background sweep: expire servers that ran past their paid period.
	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@every 1h", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = servers.ExpireOverdue(ctx)
	}); err != nil {
		logger.Fatal("Failed to schedule server expiry sweep", "error", err)
	}
	sweeper.Start()

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
