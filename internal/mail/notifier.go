// Package mail implements the booking.Notifier capability on top of
// SendGrid. The notifier only reports success or failure to its caller; it
// never writes a user-facing response itself.
package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/campusvenue/venue-booking-backend/internal/booking"
)

// Config holds the settings the SendGrid notifier needs.
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string

	// AdminEmail receives the approval request with accept/reject links.
	AdminEmail string

	// PublicBaseURL is the externally reachable base URL the action links
	// are built from.
	PublicBaseURL string
}

// SendGridNotifier sends booking notifications through SendGrid.
type SendGridNotifier struct {
	client *sendgrid.Client
	cfg    Config
}

// NewSendGridNotifier creates a notifier using the given settings.
func NewSendGridNotifier(cfg Config) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(cfg.APIKey),
		cfg:    cfg,
	}
}

func (n *SendGridNotifier) BookingRequested(ctx context.Context, b *booking.Booking) error {
	subject, plain, html, err := renderRequestEmail(n.cfg.PublicBaseURL, b)
	if err != nil {
		return err
	}
	return n.send(ctx, n.cfg.AdminEmail, "Administrator", subject, plain, html)
}

func (n *SendGridNotifier) BookingDecided(ctx context.Context, b *booking.Booking) error {
	subject, plain, html, err := renderDecisionEmail(b)
	if err != nil {
		return err
	}
	return n.send(ctx, b.Contact.Email, b.Contact.Name, subject, plain, html)
}

func (n *SendGridNotifier) send(ctx context.Context, toEmail, toName, subject, plain, html string) error {
	from := sgmail.NewEmail(n.cfg.FromName, n.cfg.FromEmail)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, plain, html)

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	log.Printf("email sent to %s (subject: %s)", toEmail, subject)
	return nil
}

// LogNotifier is a no-op notifier used when no SendGrid API key is
// configured (local development, tests). It logs what would have been sent.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) BookingRequested(ctx context.Context, b *booking.Booking) error {
	log.Printf("notifier disabled: would notify admin about booking %s for venue %s", b.ID, b.VenueName)
	return nil
}

func (n *LogNotifier) BookingDecided(ctx context.Context, b *booking.Booking) error {
	log.Printf("notifier disabled: would notify %s that booking %s is %s", b.Contact.Email, b.ID, b.Status)
	return nil
}
