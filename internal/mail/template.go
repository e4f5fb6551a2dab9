package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"github.com/campusvenue/venue-booking-backend/internal/booking"
)

// requestTemplateData feeds the admin approval email.
type requestTemplateData struct {
	VenueName    string
	Date         string
	StartTime    string
	EndTime      string
	Reason       string
	Organisation string
	ContactName  string
	ContactPhone string
	ContactEmail string
	AcceptURL    string
	RejectURL    string
}

// decisionTemplateData feeds the requester outcome email.
type decisionTemplateData struct {
	VenueName   string
	Date        string
	StartTime   string
	EndTime     string
	Status      string
	ContactName string
}

var requestTemplate = template.Must(template.New("booking-request").Parse(`
<div style="font-family: Arial, sans-serif; color: #333;">
  <h2>New Booking Request</h2>
  <p>Hello,</p>
  <p><strong>{{.Organisation}}</strong> has requested to book <strong>{{.VenueName}}</strong>
  on <strong>{{.Date}}</strong> from <strong>{{.StartTime}}</strong> to <strong>{{.EndTime}}</strong>
  for the following reason:</p>
  <p><em>{{.Reason}}</em></p>
  <h4>Point of Contact</h4>
  <p>Name: <strong>{{.ContactName}}</strong></p>
  <p>Email: <strong>{{.ContactEmail}}</strong></p>
  <p>Phone: <strong>{{.ContactPhone}}</strong></p>
  <div style="margin-top: 20px;">
    <p>Please decide on the request by clicking one of the options below:</p>
    <a href="{{.AcceptURL}}" style="display: inline-block; padding: 10px 15px; background-color: #28a745; color: white; text-decoration: none; border-radius: 5px; margin-right: 10px;">Accept</a>
    <a href="{{.RejectURL}}" style="display: inline-block; padding: 10px 15px; background-color: #dc3545; color: white; text-decoration: none; border-radius: 5px;">Reject</a>
  </div>
</div>
`))

var decisionTemplate = template.Must(template.New("booking-decision").Parse(`
<div style="font-family: Arial, sans-serif; color: #333;">
  <h2>Booking {{.Status}}</h2>
  <p>Hello {{.ContactName}},</p>
  <p>Your booking request for <strong>{{.VenueName}}</strong> on <strong>{{.Date}}</strong>
  from <strong>{{.StartTime}}</strong> to <strong>{{.EndTime}}</strong> has been
  <strong>{{.Status}}</strong>.</p>
  <p>Thank you for using the venue booking service.</p>
</div>
`))

func renderRequestEmail(baseURL string, b *booking.Booking) (subject, plain, html string, err error) {
	data := requestTemplateData{
		VenueName:    b.VenueName,
		Date:         b.Date.Format("2006-01-02"),
		StartTime:    b.Window.StartClock(),
		EndTime:      b.Window.EndClock(),
		Reason:       b.Reason,
		Organisation: b.Organisation,
		ContactName:  b.Contact.Name,
		ContactPhone: b.Contact.Phone,
		ContactEmail: b.Contact.Email,
		AcceptURL:    actionURL(baseURL, "accept", b.ID),
		RejectURL:    actionURL(baseURL, "reject", b.ID),
	}

	var buf bytes.Buffer
	if err := requestTemplate.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("failed to render booking request email: %w", err)
	}

	subject = fmt.Sprintf("Request for booking at %s", b.VenueName)
	plain = fmt.Sprintf(
		"%s has requested to book %s on %s from %s to %s.\n\n"+
			"Reason: %s\n"+
			"Contact: %s (%s, %s)\n\n"+
			"Accept: %s\nReject: %s\n",
		data.Organisation, data.VenueName, data.Date, data.StartTime, data.EndTime,
		data.Reason, data.ContactName, data.ContactEmail, data.ContactPhone,
		data.AcceptURL, data.RejectURL,
	)
	return subject, plain, buf.String(), nil
}

func renderDecisionEmail(b *booking.Booking) (subject, plain, html string, err error) {
	data := decisionTemplateData{
		VenueName:   b.VenueName,
		Date:        b.Date.Format("2006-01-02"),
		StartTime:   b.Window.StartClock(),
		EndTime:     b.Window.EndClock(),
		Status:      string(b.Status),
		ContactName: b.Contact.Name,
	}

	var buf bytes.Buffer
	if err := decisionTemplate.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("failed to render booking decision email: %w", err)
	}

	subject = fmt.Sprintf("Your booking at %s has been %s", b.VenueName, b.Status)
	plain = fmt.Sprintf(
		"Hello %s,\n\nYour booking request for %s on %s from %s to %s has been %s.\n",
		data.ContactName, data.VenueName, data.Date, data.StartTime, data.EndTime, data.Status,
	)
	return subject, plain, buf.String(), nil
}

func actionURL(baseURL, action, bookingID string) string {
	return fmt.Sprintf("%s/v1/admin/bookings/%s?booking_id=%s",
		baseURL, action, url.QueryEscape(bookingID))
}
