package mailer

// go generate: mockery --name Sender

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/Sami21234/lostfound-backend/models"
	templates "github.com/Sami21234/lostfound-backend/templates/html"
)

// Sender delivers owner-facing notifications. Implementations must treat a
// delivery failure as an ordinary error return; callers decide whether it is
// fatal.
type Sender interface {
	SendMatchNotification(lost models.LostReport, found models.FoundReport, score int) error
	SendHighConfidenceMatch(lost models.LostReport, found models.FoundReport, score int) error
	SendExpiryNotice(to, contactName, itemName string) error
}

// SendgridSender sends notifications through the SendGrid API
type SendgridSender struct {
	FromName    string
	FromAddress string
}

// NewSendgridSender builds a sender with the configured from identity
func NewSendgridSender(fromName, fromAddress string) *SendgridSender {
	return &SendgridSender{FromName: fromName, FromAddress: fromAddress}
}

// SendMatchNotification emails the lost-report owner that a possible match
// was reported.
func (s *SendgridSender) SendMatchNotification(lost models.LostReport, found models.FoundReport, score int) error {
	subject := fmt.Sprintf("Your Lost Item %q May Have Been Found!", lost.ItemName)
	plain := fmt.Sprintf("Someone reported finding an item matching your lost %s (match score %d). Finder contact: %s %s %s",
		lost.ItemName, score, found.ContactName, found.ContactPhone, found.ContactEmail)
	html := templates.RenderMatchNotification(lost, found, score)
	return s.send(lost.ContactEmail, subject, plain, html)
}

// SendHighConfidenceMatch emails the lost-report owner that a strong match
// was reported and that their listing was removed.
func (s *SendgridSender) SendHighConfidenceMatch(lost models.LostReport, found models.FoundReport, score int) error {
	subject := fmt.Sprintf("HIGH CONFIDENCE Match Found for %q", lost.ItemName)
	plain := fmt.Sprintf("We found a very strong match (score %d) for your lost %s. Your listing has been removed; contact the finder: %s %s %s",
		score, lost.ItemName, found.ContactName, found.ContactPhone, found.ContactEmail)
	html := templates.RenderHighConfidenceMatch(lost, found, score)
	return s.send(lost.ContactEmail, subject, plain, html)
}

// SendExpiryNotice emails a report owner that their listing aged out and was
// removed by the scheduler.
func (s *SendgridSender) SendExpiryNotice(to, contactName, itemName string) error {
	subject := fmt.Sprintf("Your report for %q has expired", itemName)
	plain := fmt.Sprintf("Hello %s, your report for %q was removed after its retention period. You can submit a new report any time.", contactName, itemName)
	html := templates.RenderGenericEmail(subject, plain)
	return s.send(to, subject, plain, html)
}

func (s *SendgridSender) send(to, subject, plainTextContent, htmlContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set, cannot send email")
	}

	from := mail.NewEmail(s.FromName, s.FromAddress)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	zap.S().Infow("email sent", "to", to, "subject", subject, "statusCode", response.StatusCode)
	return nil
}
