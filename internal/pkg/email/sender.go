package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers mail over SMTP via gomail.
type SMTPSender struct {
	config Config
	dialer *gomail.Dialer
}

// NewSMTPSender builds an SMTP-backed provider. Callers should check
// Config.IsConfigured first and fall back to the no-op provider otherwise.
func NewSMTPSender(config Config) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPSender{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

func (s *SMTPSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = s.config.FromEmail
	}
	m.SetAddressHeader("From", from, s.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
	}
	if email.HTMLBody != "" {
		if email.Body != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		} else {
			m.SetBody("text/html", email.HTMLBody)
		}
	}

	return s.dialer.DialAndSend(m)
}

func (s *SMTPSender) SendVerification(to, token, userID string) error {
	actionURL := fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s&userId=%s", s.config.SiteURL, token, userID)
	html, err := renderTemplate("verification", TemplateData{"ActionURL": actionURL})
	if err != nil {
		return err
	}

	return s.Send(&Email{
		To:       []string{to},
		Subject:  "Verify Your Email - rabt Platform",
		HTMLBody: html,
	})
}

func (s *SMTPSender) SendPasswordReset(to, token string) error {
	actionURL := fmt.Sprintf("%s/auth/update-password?token=%s", s.config.SiteURL, token)
	html, err := renderTemplate("password_reset", TemplateData{"ActionURL": actionURL})
	if err != nil {
		return err
	}

	return s.Send(&Email{
		To:       []string{to},
		Subject:  "Reset Your Password - rabt Platform",
		HTMLBody: html,
	})
}
