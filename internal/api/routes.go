package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/core"
	"github.com/wuquf/wuquf-backend/internal/middleware"
)

// Services groups the core services the routes dispatch to.
type Services struct {
	Users        core.UserService
	Companies    core.CompanyService
	Locations    core.LocationService
	Spots        core.SpotService
	Reservations core.ReservationService
	Payments     core.PaymentService
}

// RouteOptions toggles the optional parts of the HTTP surface.
type RouteOptions struct {
	// AuthRequired puts every route except /config, /singup and /health behind
	// Firebase ID token verification.
	AuthRequired bool
	// StaticDir is served for paths that match no route.
	StaticDir string
}

// SetupRoutes registers every endpoint on router. Global middleware (logging,
// recovery, CORS) is expected to be installed by the caller. verifier may be
// nil when opts.AuthRequired is false.
func SetupRoutes(
	router *gin.Engine,
	opts RouteOptions,
	logger *zap.Logger,
	services Services,
	verifier middleware.TokenVerifier,
) {
	userHandler := NewUserHandler(services.Users, logger)
	companyHandler := NewCompanyHandler(services.Companies, logger)
	locationHandler := NewLocationHandler(services.Locations, logger)
	spotHandler := NewSpotHandler(services.Spots, logger)
	reservationHandler := NewReservationHandler(services.Reservations, logger)
	paymentHandler := NewPaymentHandler(services.Payments, logger)

	// Public endpoints.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	router.GET("/config", paymentHandler.GetConfig)
	router.POST("/singup", userHandler.SignUp)

	protected := router.Group("/")
	if opts.AuthRequired {
		if verifier == nil {
			logger.Fatal("AUTH_REQUIRED is set but no token verifier was provided")
		}
		protected.Use(middleware.NewAuthMiddleware(verifier, logger).VerifyToken())
	}

	protected.GET("/users", userHandler.ListUsers)
	protected.GET("/user/:id", userHandler.GetUser)

	protected.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)

	protected.POST("/create-company", companyHandler.CreateCompany)
	protected.GET("/get-company", companyHandler.ListCompanies)
	protected.GET("/getOne-company/:id", companyHandler.GetCompany)
	protected.POST("/update-company/:id", companyHandler.UpdateCompany)
	protected.DELETE("/delete-company/:id", companyHandler.DeleteCompany)
	protected.POST("/subscripe-company/:id", companyHandler.SubscribeCompany)

	protected.POST("/create-location-park/:companyId", locationHandler.CreateLocation)
	protected.GET("/get-parking", locationHandler.ListLocations)
	protected.GET("/get-parking/:id", locationHandler.GetLocation)
	protected.POST("/update-parking/:id", locationHandler.UpdateLocation)
	protected.DELETE("/delete-parking/:id", locationHandler.DeleteLocation)

	protected.POST("/create-parking/:ParkingId", spotHandler.CreateSpot)
	protected.GET("/get-park", spotHandler.ListSpots)
	protected.GET("/get-park/:id", spotHandler.GetSpot)
	protected.POST("/update-park/:ParkId", spotHandler.UpdateSpot)
	protected.DELETE("/delete-park/:ParkId", spotHandler.DeleteSpot)

	protected.GET("/reserve-parking", reservationHandler.ListReservations)
	protected.POST("/reserve-parking/:parkId", reservationHandler.ReserveSpot)
	protected.POST("/update-reserve/:reserveId", reservationHandler.UpdateReservation)
	protected.DELETE("/delete-Reserve/:parkId", reservationHandler.CancelReservation)

	if opts.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(opts.StaticDir))))
	}

	logger.Info("API routes configured", zap.Bool("authRequired", opts.AuthRequired))
}
