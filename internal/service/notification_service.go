package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"vet-clinic-booking/config"
)

// BookingConfirmation is the model handed to the notifier when a
// booking is accepted. The acceptance workflow fills every field; the
// notifier only renders and delivers.
type BookingConfirmation struct {
	ToAddress        string
	CustomerName     string
	PetName          string
	VeterinarianName string
	ServiceName      string
	TotalPrice       string
	AdmissionDate    string // YYYY-MM-DD
	AdmissionTime    string // HH:MM
	PhotoURL         string
}

// Notifier renders and delivers booking notifications. Delivery is
// fire-and-forget from the booking workflow's perspective.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, confirmation *BookingConfirmation) error
}

const confirmationSubject = "Your appointment is confirmed"

var confirmationTemplate = template.Must(template.New("booking_confirmation").Parse(`
<html>
<body>
  <h2>Appointment confirmed</h2>
  <p>Dear {{.CustomerName}},</p>
  <p>Your appointment for <b>{{.PetName}}</b> has been confirmed.</p>
  <table>
    <tr><td>Service</td><td>{{.ServiceName}}</td></tr>
    <tr><td>Veterinarian</td><td>{{.VeterinarianName}}</td></tr>
    <tr><td>Date</td><td>{{.AdmissionDate}}</td></tr>
    <tr><td>Time</td><td>{{.AdmissionTime}}</td></tr>
    <tr><td>Total price</td><td>{{.TotalPrice}}</td></tr>
  </table>
  {{if .PhotoURL}}<p><img src="{{.PhotoURL}}" alt="{{.VeterinarianName}}" width="120"/></p>{{end}}
  <p>See you at the clinic!</p>
</body>
</html>`))

// RenderBookingConfirmation produces the HTML body for a confirmation.
// Exposed separately so senders and tests share one rendering path.
func RenderBookingConfirmation(confirmation *BookingConfirmation) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, confirmation); err != nil {
		return "", fmt.Errorf("render booking confirmation: %w", err)
	}
	return buf.String(), nil
}

// SendGridNotifier delivers confirmations via the SendGrid API.
type SendGridNotifier struct {
	client      *sendgrid.Client
	fromAddress string
	fromName    string
	log         *logrus.Logger
}

func NewSendGridNotifier(cfg config.MailConfig, log *logrus.Logger) *SendGridNotifier {
	return &SendGridNotifier{
		client:      sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		log:         log,
	}
}

func (n *SendGridNotifier) SendBookingConfirmation(ctx context.Context, confirmation *BookingConfirmation) error {
	body, err := RenderBookingConfirmation(confirmation)
	if err != nil {
		return err
	}

	from := mail.NewEmail(n.fromName, n.fromAddress)
	to := mail.NewEmail(confirmation.CustomerName, confirmation.ToAddress)
	message := mail.NewSingleEmail(from, confirmationSubject, to, body, body)

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		n.log.Errorf("Failed to send confirmation to %s: %+v", confirmation.ToAddress, err)
		return fmt.Errorf("send confirmation: %w", err)
	}
	if resp.StatusCode >= 400 {
		n.log.Errorf("SendGrid returned status %d for %s", resp.StatusCode, confirmation.ToAddress)
		return fmt.Errorf("send confirmation: sendgrid status %d", resp.StatusCode)
	}

	n.log.Infof("Confirmation sent to %s", confirmation.ToAddress)
	return nil
}

// LogNotifier logs instead of sending. Used when no SendGrid key is
// configured (local dev) and in tests.
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendBookingConfirmation(ctx context.Context, confirmation *BookingConfirmation) error {
	n.log.Infof("Would send booking confirmation to %s (pet=%s, service=%s, total=%s)",
		confirmation.ToAddress, confirmation.PetName, confirmation.ServiceName, confirmation.TotalPrice)
	return nil
}
