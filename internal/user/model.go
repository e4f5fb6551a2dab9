package user

import (
	"net/http"
	"time"

	"github.com/campusvenue/venue-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password must be at least 8 characters")
)

// User represents an account that can submit booking requests. Whether a
// user is an administrator is decided by the configured email allow-list,
// not stored here.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
