package app

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusvenue/venue-booking-backend/internal/api"
	"github.com/campusvenue/venue-booking-backend/internal/auth"
	"github.com/campusvenue/venue-booking-backend/internal/booking"
	"github.com/campusvenue/venue-booking-backend/internal/mail"
	"github.com/campusvenue/venue-booking-backend/internal/pkg/storage"
	"github.com/campusvenue/venue-booking-backend/internal/user"
	"github.com/campusvenue/venue-booking-backend/internal/venue"
	"github.com/campusvenue/venue-booking-backend/internal/venue/photo"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	AdminEmails          []string
	InstituteEmailDomain string
	PublicBaseURL        string

	SendGridAPIKey   string
	SendGridFrom     string
	SendGridFromName string
	AdminNotifyEmail string

	UploadDir string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	allowlist := auth.NewAllowlist(cfg.AdminEmails)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	// Notifications fall back to logging when SendGrid is not configured.
	var notifier booking.Notifier
	if cfg.SendGridAPIKey != "" {
		notifier = mail.NewSendGridNotifier(mail.Config{
			APIKey:        cfg.SendGridAPIKey,
			FromEmail:     cfg.SendGridFrom,
			FromName:      cfg.SendGridFromName,
			AdminEmail:    cfg.AdminNotifyEmail,
			PublicBaseURL: cfg.PublicBaseURL,
		})
	} else {
		log.Println("SENDGRID_API_KEY not set, email notifications disabled")
		notifier = mail.NewLogNotifier()
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Venue module
	venueRepo := venue.NewPgxRepository(cfg.DBPool)
	venueService := venue.NewService(venueRepo)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, venueService, notifier, cfg.InstituteEmailDomain)

	// Photo module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, venueService, store)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		VenueService:   venueService,
		BookingService: bookingService,
		PhotoService:   photoService,
		JWTManager:     jwtManager,
		Allowlist:      allowlist,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
