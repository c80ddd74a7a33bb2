// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendBookingConfirmation(toEmail, name, date, timeSlot string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, senderEmail, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, senderEmail, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendBookingConfirmation(toEmail, name, date, timeSlot string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Interview Booking Confirmation")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Interview Scheduled</h2>
			<p>Hi %s,</p>
			<p>Your interview has been scheduled for:</p>
			<h3>%s at %s</h3>
			<p>If you need to reschedule, please contact us or cancel the booking.</p>
		</div>
	`, name, date, timeSlot)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send booking confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Booking confirmation sent to %s\n", toEmail)
	return nil
}
