package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/api"
	"github.com/wuquf/wuquf-backend/internal/config"
	"github.com/wuquf/wuquf-backend/internal/core"
	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/firebase"
	"github.com/wuquf/wuquf-backend/internal/jobs"
	"github.com/wuquf/wuquf-backend/internal/middleware"
	"github.com/wuquf/wuquf-backend/internal/payments"
	"github.com/wuquf/wuquf-backend/internal/token"
	"github.com/wuquf/wuquf-backend/pkg/cache"
	"github.com/wuquf/wuquf-backend/pkg/mailer"
	"github.com/wuquf/wuquf-backend/pkg/messagequeue"
)

func newLogger() (*zap.Logger, error) {
	if strings.ToLower(os.Getenv("GIN_MODE")) == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	// .env is a development convenience. Release deployments set the environment directly.
	if strings.ToLower(os.Getenv("GIN_MODE")) != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file loaded:", err)
		}
	}

	// --- 1. Logger ---
	zapLogger, err := newLogger()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// --- 2. Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded.")

	// --- 3. Firebase Admin SDK ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	fbClients, err := firebase.NewClients(initCtx, appConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	defer func() {
		if err := fbClients.Close(); err != nil {
			zapLogger.Warn("Error closing Firestore client", zap.Error(err))
		}
	}()
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized.")

	// --- 4. Optional infrastructure ---
	var spotCache cache.Cache = cache.NopCache{}
	if appConfig.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(initCtx, cache.RedisConfig{
			Address:  appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		}, zapLogger)
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to Redis", zap.Error(err))
		}
		defer redisCache.Close()
		spotCache = redisCache
	} else {
		zapLogger.Info("REDIS_ADDR not set; spot cache disabled.")
	}

	var publisher messagequeue.Publisher = messagequeue.NopPublisher{}
	if appConfig.RabbitMQURL != "" {
		rabbit, err := messagequeue.NewRabbitMQPublisher(appConfig.RabbitMQURL, zapLogger)
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to RabbitMQ", zap.Error(err))
		}
		publisher = rabbit
	} else {
		zapLogger.Info("RABBITMQ_URL not set; reservation events are dropped.")
	}
	defer publisher.Close()

	var mail mailer.Mailer = mailer.NopMailer{}
	if appConfig.SendGridAPIKey != "" {
		mail = mailer.NewSendGridMailer(appConfig.SendGridAPIKey, appConfig.SendGridFromEmail, appConfig.SendGridFromName)
	} else {
		zapLogger.Info("SENDGRID_API_KEY not set; subscription e-mails are skipped.")
	}

	// --- 5. Repositories ---
	userRepo := db.NewFirestoreUserRepository(fbClients.Firestore)
	companyRepo := db.NewFirestoreCompanyRepository(fbClients.Firestore)
	locationRepo := db.NewFirestoreLocationRepository(fbClients.Firestore)
	spotRepo := db.NewCachedSpotRepository(
		db.NewFirestoreSpotRepository(fbClients.Firestore), spotCache, appConfig.CacheTTL, zapLogger)
	reservationRepo := db.NewFirestoreReservationRepository(fbClients.Firestore)

	// --- 6. Services ---
	services := api.Services{
		Users: core.NewUserService(userRepo, firebase.NewIdentityProvider(fbClients.Auth), zapLogger),
		Companies: core.NewCompanyService(
			companyRepo, token.NewSigner(appConfig.JWTSecretKey), mail, core.NewID, zapLogger),
		Locations: core.NewLocationService(companyRepo, locationRepo, spotRepo, core.NewID, zapLogger),
		Spots:     core.NewSpotService(locationRepo, spotRepo, core.NewID, zapLogger),
		Reservations: core.NewReservationService(
			reservationRepo, spotRepo, publisher, appConfig.ReservationEventsQueue, zapLogger),
		Payments: core.NewPaymentService(
			payments.NewStripeProcessor(appConfig.StripeSecretKey, appConfig.StripePublishableKey),
			appConfig.PaymentAmount, appConfig.PaymentCurrency),
	}

	// --- 7. Drift audit ---
	if appConfig.DriftAuditSchedule != "" {
		auditor := jobs.NewDriftAuditor(reservationRepo, spotRepo, zapLogger)
		scheduler, err := auditor.Schedule(context.Background(), appConfig.DriftAuditSchedule)
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to schedule drift audit", zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
		zapLogger.Info("Drift audit scheduled", zap.String("schedule", appConfig.DriftAuditSchedule))
	}

	// --- 8. Gin engine ---
	if appConfig.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware(appConfig.ClientURL))

	api.SetupRoutes(router, api.RouteOptions{
		AuthRequired: appConfig.AuthRequired,
		StaticDir:    appConfig.StaticDir,
	}, zapLogger, services, fbClients.Auth)

	// --- 9. HTTP server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 10. Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shut down", zap.Error(err))
	}
	zapLogger.Info("Server exited.")
}
