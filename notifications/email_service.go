package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexsterin2005-wq/amtennis/models"
)

const (
	brevoURL        = "https://api.brevo.com/v3/smtp/email"
	academyLocation = "Council Rock North High School Tennis Courts, 62 Swamp Rd, Newtown, PA 18940"
	paymentInfo     = "Payment Options: Venmo: @AMTennis | Zelle: isa2005@gmail.com | Card | Cash/Check accepted at lesson"
)

// TemplateParams carries everything an email template renders. One Send call
// delivers to exactly one recipient (Email); the booking service calls Send
// once for the client and once for the business address.
type TemplateParams struct {
	Subject            string
	Intro              string
	Coach              string
	Date               string
	Time               string
	Duration           string
	Price              string
	Name               string
	Email              string
	Phone              string
	Notes              string
	BookingID          string
	Location           string
	PaymentInfo        string
	CancellationPolicy string
}

// NewConfirmationParams builds the confirmation template for a booking. The
// cancellation fee is $15 for one-hour lessons and $20 otherwise.
func NewConfirmationParams(b models.Booking) TemplateParams {
	fee := "$20"
	if b.DurationMinutes == 60 {
		fee = "$15"
	}
	return TemplateParams{
		Subject:            fmt.Sprintf("Your Tennis Lesson is Confirmed! (%s)", b.ID),
		Intro:              "Your tennis lesson at AM Tennis Academy is confirmed.",
		Coach:              b.Coach,
		Date:               b.Date,
		Time:               b.Time,
		Duration:           strconv.Itoa(b.DurationMinutes),
		Price:              b.PriceDollars(),
		Name:               b.Name,
		Email:              b.Email,
		Phone:              b.Phone,
		Notes:              b.Notes,
		BookingID:          b.ID,
		Location:           academyLocation,
		PaymentInfo:        paymentInfo,
		CancellationPolicy: fmt.Sprintf("Cancellation Policy: %s cancellation fee applies if cancelled within 24 hours of the scheduled lesson time.", fee),
	}
}

// NewReminderParams builds the next-day reminder template for a booking.
func NewReminderParams(b models.Booking) TemplateParams {
	p := NewConfirmationParams(b)
	p.Subject = fmt.Sprintf("Reminder: Your Tennis Lesson is Tomorrow (%s)", b.ID)
	p.Intro = "This is a friendly reminder about your tennis lesson tomorrow."
	return p
}

type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	BaseURL     string
	Client      *http.Client
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// NewBrevoService returns nil when the Brevo credentials are not configured;
// callers should fall back to a NoopNotifier.
func NewBrevoService(apiKey, senderEmail, senderName string) *BrevoService {
	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		return nil
	}
	return &BrevoService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
		BaseURL:     brevoURL,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *BrevoService) send(ctx context.Context, toEmail, toName, subject, htmlContent string) error {
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": s.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.BaseURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("content-type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		log.Printf("Brevo API error: Status %d, Body: %s", resp.StatusCode, string(bodyBytes))
		return fmt.Errorf("failed to send email via Brevo: %s", string(bodyBytes))
	}

	return nil
}

// Send delivers one email to the recipient in p. Failures are logged, never
// surfaced: a lost confirmation does not undo a booking.
func (s *BrevoService) Send(ctx context.Context, p TemplateParams) bool {
	if err := s.send(ctx, p.Email, p.Name, p.Subject, renderHTML(p)); err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", p.Email, err)
		return false
	}
	log.Printf("✅ Email sent successfully to %s", p.Email)
	return true
}

func renderHTML(p TemplateParams) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<h1>AM Tennis Academy</h1><p>%s</p>", p.Intro))
	sb.WriteString(fmt.Sprintf("<p><b>Booking:</b> %s<br>", p.BookingID))
	sb.WriteString(fmt.Sprintf("<b>Coach:</b> %s<br>", p.Coach))
	sb.WriteString(fmt.Sprintf("<b>Date:</b> %s at %s<br>", p.Date, p.Time))
	sb.WriteString(fmt.Sprintf("<b>Duration:</b> %s minutes<br>", p.Duration))
	sb.WriteString(fmt.Sprintf("<b>Price:</b> $%s</p>", p.Price))
	sb.WriteString(fmt.Sprintf("<p><b>Client:</b> %s (%s", p.Name, p.Email))
	if p.Phone != "" {
		sb.WriteString(", " + p.Phone)
	}
	sb.WriteString(")</p>")
	if p.Notes != "" {
		sb.WriteString(fmt.Sprintf("<p><b>Notes:</b> %s</p>", p.Notes))
	}
	sb.WriteString(fmt.Sprintf("<p>%s</p>", p.Location))
	sb.WriteString(fmt.Sprintf("<p>%s</p>", p.PaymentInfo))
	sb.WriteString(fmt.Sprintf("<p>%s</p>", p.CancellationPolicy))
	return sb.String()
}

// NoopNotifier satisfies the notifier contract when email is not configured.
type NoopNotifier struct{}

func (NoopNotifier) Send(ctx context.Context, p TemplateParams) bool {
	log.Printf("Email client not initialized, skipping email to %s.", p.Email)
	return false
}
