// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"harithakarmabhoomi/config"
	"harithakarmabhoomi/cron"
	"harithakarmabhoomi/database"
	"harithakarmabhoomi/database/repository"
	bookingRepoPkg "harithakarmabhoomi/database/repository/booking"
	complaintRepoPkg "harithakarmabhoomi/database/repository/complaint"
	exchangeRepoPkg "harithakarmabhoomi/database/repository/exchange"
	reportRepoPkg "harithakarmabhoomi/database/repository/report"
	userRepoPkg "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/handlers"
	"harithakarmabhoomi/middleware"
	"harithakarmabhoomi/routes"
	"harithakarmabhoomi/services/booking"
	"harithakarmabhoomi/services/complaint"
	"harithakarmabhoomi/services/exchange"
	"harithakarmabhoomi/services/report"
	"harithakarmabhoomi/services/session"
	"harithakarmabhoomi/services/user"
	"harithakarmabhoomi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitRecordStore()
	database.InitSessionStore()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	store := repository.NewRecordStore(database.GetRecordClient())
	userRepo := userRepoPkg.NewRedisUserRepo(store)
	bookingRepo := bookingRepoPkg.NewRedisBookingRepo(store, userRepo)
	complaintRepo := complaintRepoPkg.NewRedisComplaintRepo(store, userRepo)
	exchangeRepo := exchangeRepoPkg.NewRedisExchangeRepo(store, userRepo)
	reportRepo := reportRepoPkg.NewRedisReportRepo(store)
	rateRepo := repository.NewRedisRateRepo(store)

	// services.
	sessions := session.NewManager(database.GetSessionClient(),
		time.Duration(config.AppConfig.SessionTTLHours)*time.Hour)
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Sessions: sessions,
	}
	handlers.SetUserService(userService)

	bookingService := &booking.DefaultBookingService{
		Repo:  bookingRepo,
		Users: userRepo,
	}
	complaintService := &complaint.DefaultComplaintService{
		Repo:  complaintRepo,
		Users: userRepo,
	}
	exchangeService := &exchange.DefaultExchangeService{
		Repo:  exchangeRepo,
		Users: userRepo,
		Rates: rateRepo,
	}
	reportService := &report.DefaultReportService{
		Repo: reportRepo,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	complaintHandler := handlers.NewComplaintHandler(complaintService, logger)
	exchangeHandler := handlers.NewExchangeHandler(exchangeService, logger)
	reportHandler := handlers.NewReportHandler(reportService, logger)
	adminHandler := handlers.NewAdminHandler(userService, bookingService, complaintService, exchangeService,
		bookingRepo, complaintRepo, exchangeRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		RegisterUserHandler:     handlers.RegisterUserHandler,
		AuthenticateUserHandler: handlers.AuthenticateUserHandler,
		LogoutHandler:           handlers.LogoutHandler,

		// Citizen profile endpoints.
		GetProfileHandler:    handlers.GetProfileHandler,
		UpdateProfileHandler: handlers.UpdateProfileHandler,
		QRCodeHandler:        handlers.QRCodeHandler,

		// Citizen booking endpoints.
		CreateBookingHandler:  bookingHandler.CreateBookingHandler,
		ListMyBookingsHandler: bookingHandler.ListMyBookingsHandler,
		VoiceExtractHandler:   bookingHandler.VoiceExtractHandler,
		VoiceConfirmHandler:   bookingHandler.VoiceConfirmHandler,
		ContactBookingHandler: bookingHandler.ContactBookingHandler,

		// Citizen complaint endpoints.
		CreateComplaintHandler:  complaintHandler.CreateComplaintHandler,
		ListMyComplaintsHandler: complaintHandler.ListMyComplaintsHandler,

		// Citizen exchange endpoints.
		CreateExchangeHandler:  exchangeHandler.CreateExchangeHandler,
		ListMyExchangesHandler: exchangeHandler.ListMyExchangesHandler,
		GetRatesHandler:        exchangeHandler.GetRatesHandler,

		// Citizen report endpoints.
		CreateReportHandler:  reportHandler.CreateReportHandler,
		ListMyReportsHandler: reportHandler.ListMyReportsHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, userService)

	// Start the stale-pending sweep.
	sweeper := cron.NewStaleSweeper(bookingRepo, exchangeRepo)
	sweeper.Start()
	defer sweeper.Stop()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
