// utils/email.go
package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional emails through SendGrid
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService returns an EmailService. With an empty API key the service
// is disabled and every send becomes a no-op, so local runs work without
// SendGrid credentials.
func NewEmailService(apiKey, sender string) *EmailService {
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY not set; email notifications disabled")
		return &EmailService{}
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, content string) error {
	if es.client == nil {
		return nil
	}

	from := mail.NewEmail("Car Hut", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}

// SendPaymentReceipt notifies a buyer that their payment went through
func (es *EmailService) SendPaymentReceipt(toEmail, transactionID string, amount float64) error {
	subject := "Payment Received - Car Hut"
	content := fmt.Sprintf("Dear Customer,\n\nWe have received your payment of $%.2f. Your transaction ID is %s. The seller will contact you to arrange the handover.\n\nThank you for using Car Hut!\n", amount, transactionID)
	return es.SendEmail(toEmail, subject, content)
}

// SendVerificationNotice congratulates a seller on becoming verified
func (es *EmailService) SendVerificationNotice(toEmail string) error {
	subject := "You Are Now a Verified Seller - Car Hut"
	content := "Dear Seller,\n\nYour account has been verified. A blue badge now appears next to your name on all of your listings.\n\nThank you for selling with Car Hut!\n"
	return es.SendEmail(toEmail, subject, content)
}
