package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"gadgetlend-backend/internal/config"
)

type sendGridService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(cfg config.SendGridConfig) EmailService {
	return &sendGridService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

// SendOverdueNotice emails a student whose rental has gone past its due date.
func (s *sendGridService) SendOverdueNotice(ctx context.Context, email, name string, rentalID int32, dueDate string, fineCents int32) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(name, email)

	subject := fmt.Sprintf("Overdue rental #%d", rentalID)
	pesos := float64(fineCents) / 100
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour rental #%d was due on %s and is now overdue. "+
			"A fine of PHP %.2f has been applied to your account. "+
			"Please return the borrowed gadgets to the admin office as soon as possible.\n",
		name, rentalID, dueDate, pesos,
	)
	htmlContent := fmt.Sprintf(
		`<p>Hi %s,</p>
		<p>Your rental <strong>#%d</strong> was due on <strong>%s</strong> and is now overdue.
		A fine of <strong>PHP %.2f</strong> has been applied to your account.</p>
		<p>Please return the borrowed gadgets to the admin office as soon as possible.</p>`,
		name, rentalID, dueDate, pesos,
	)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send overdue notice: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
