package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campusvenue/venue-booking-backend/internal/auth"
	"github.com/campusvenue/venue-booking-backend/internal/booking"
	bookingHttp "github.com/campusvenue/venue-booking-backend/internal/booking/http"
	"github.com/campusvenue/venue-booking-backend/internal/user"
	userHttp "github.com/campusvenue/venue-booking-backend/internal/user/http"
	"github.com/campusvenue/venue-booking-backend/internal/venue"
	venueHttp "github.com/campusvenue/venue-booking-backend/internal/venue/http"
	"github.com/campusvenue/venue-booking-backend/internal/venue/photo"
	photoHttp "github.com/campusvenue/venue-booking-backend/internal/venue/photo/http"
)

// Config holds the services and settings the router assembles into an engine.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	VenueService   venue.Service
	BookingService booking.Service
	PhotoService   photo.Service

	JWTManager *auth.JWTManager
	Allowlist  *auth.Allowlist
}

// NewRouter initializes the HTTP router engine.
// It assembles global middleware (Logger, Recovery, CORS) and registers the
// routes of every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := auth.AdminRequired(cfg.Allowlist)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager, cfg.Allowlist)
	venueHandler := venueHttp.NewHandler(cfg.VenueService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		venueHttp.RegisterRoutes(v1, venueHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, adminMiddleware)
	}

	return r
}

func splitOrigins(s string) []string {
	var origins []string
	for _, part := range strings.Split(s, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
