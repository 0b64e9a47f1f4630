package email

import "fmt"

type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	SiteURL   string
}

func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// IsConfigured reports whether enough SMTP settings exist to send mail.
func (c Config) IsConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0
}
