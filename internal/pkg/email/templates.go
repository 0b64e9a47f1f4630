package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const verificationTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Verify Your Email - rabt Platform</title></head>
<body>
  <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2>Welcome to rabt Platform!</h2>
    <p>Thank you for registering. Please verify your email address to complete your account setup.</p>
    <p>
      <a href="{{.ActionURL}}"
         style="display: inline-block; padding: 12px 24px; background-color: #007bff; color: white; text-decoration: none; border-radius: 4px;">
        Verify Email Address
      </a>
    </p>
    <p>If the button doesn't work, copy and paste this link into your browser:</p>
    <p><a href="{{.ActionURL}}">{{.ActionURL}}</a></p>
    <p>This verification link will expire in 24 hours.</p>
  </div>
</body>
</html>`

const passwordResetTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Reset Your Password - rabt Platform</title></head>
<body>
  <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2>Password Reset Requested</h2>
    <p>We received a request to reset your password. Click the button below to choose a new one.</p>
    <p>
      <a href="{{.ActionURL}}"
         style="display: inline-block; padding: 12px 24px; background-color: #007bff; color: white; text-decoration: none; border-radius: 4px;">
        Reset Password
      </a>
    </p>
    <p>If you did not request a reset, you can safely ignore this email.</p>
    <p>This link will expire in 1 hour.</p>
  </div>
</body>
</html>`

var builtinTemplates = map[string]string{
	"verification":   verificationTemplate,
	"password_reset": passwordResetTemplate,
}

// renderTemplate renders one of the builtin templates with data.
func renderTemplate(name string, data TemplateData) (string, error) {
	source, ok := builtinTemplates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}

	tmpl, err := template.New(name).Parse(source)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
