package notifications

import (
	"fmt"
	"net/smtp"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// SMTPSender delivers OTP codes by email.
type SMTPSender struct {
	host string
	port int
	from string
	auth smtp.Auth
}

// NewSMTPSender creates an email sender. When host is empty the sender
// logs the message instead, mirroring the SMS mock behavior.
func NewSMTPSender(host string, port int, username, password, from string) domain.NotificationSender {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPSender{host: host, port: port, from: from, auth: auth}
}

// Send implements domain.NotificationSender.
func (s *SMTPSender) Send(destination, code string) error {
	if s.host == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Code: %s\n", destination, code)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Your verification code\r\n\r\n"+
		"Your verification code is %s. It expires in 5 minutes.\r\n", s.from, destination, code)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	if err := smtp.SendMail(addr, s.auth, s.from, []string{destination}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
