package email

import "rabt_backend/internal/logger"

// NoopProvider is used when SMTP is not configured. Sends are logged and
// dropped instead of failing the calling operation.
type NoopProvider struct{}

func NewNoopProvider() Provider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(email *Email) error {
	logger.Warn("email service not configured, message dropped", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendVerification(to, token, userID string) error {
	logger.Warn("email service not configured, verification email dropped", "to", to)
	return nil
}

func (p *NoopProvider) SendPasswordReset(to, token string) error {
	logger.Warn("email service not configured, password reset email dropped", "to", to)
	return nil
}
