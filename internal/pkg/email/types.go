package email

// Email is a single outbound message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the HTML templates.
type TemplateData map[string]interface{}

// Provider sends platform email. Implementations must be safe for
// concurrent use; callers fire-and-forget from request goroutines.
type Provider interface {
	Send(email *Email) error
	SendVerification(to, token, userID string) error
	SendPasswordReset(to, token string) error
}
