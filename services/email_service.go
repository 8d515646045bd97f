package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"ecotrack-api/config"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendVerificationEmail mails the verification link for a freshly created
// account.
func (es *EmailService) SendVerificationEmail(email, name, token string) error {
	verificationURL := fmt.Sprintf("%s/auth/verify-email/%s", es.config.AppBaseURL, token)

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "EcoTrack - Email Verification")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Email Verification</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #2e7d32; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .btn { display: inline-block; background: #2e7d32; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 10px 0; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🌱 EcoTrack</h1>
            <p>Email Verification</p>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>Welcome to EcoTrack! Please verify your email address to complete your registration.</p>
            <p><a class="btn" href="%s">Verify Email</a></p>
            <p>If you didn't create an account with EcoTrack, please ignore this email.</p>
            <p><strong>The EcoTrack Team</strong></p>
        </div>
        <div class="footer">
            <p>This is an automated email, please do not reply.</p>
        </div>
    </div>
</body>
</html>`, name, verificationURL)

	textBody := fmt.Sprintf(`
Hello %s!

Welcome to EcoTrack! Please verify your email address to complete your registration:

%s

If you didn't create an account with EcoTrack, please ignore this email.

The EcoTrack Team
`, name, verificationURL)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// SendWelcomeEmail mails a short welcome after successful verification.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to EcoTrack! 🌱")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome to EcoTrack</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #2e7d32; color: white; padding: 30px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🌱 Welcome to EcoTrack!</h1>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>Your email has been verified and your EcoTrack account is now active.</p>
            <p>Calculate your eco score, save it, and track how your habits change over time.</p>
            <p><strong>The EcoTrack Team</strong></p>
        </div>
    </div>
</body>
</html>`, name)

	textBody := fmt.Sprintf(`
Hello %s!

Your email has been verified and your EcoTrack account is now active.

Calculate your eco score, save it, and track how your habits change over time.

The EcoTrack Team
`, name)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
