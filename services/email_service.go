package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"skillshare-api/config"
)

// EmailService sends transactional mail. Every send is best-effort: callers
// log failures and keep going.
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

// SendWelcomeEmail greets a newly registered user.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to SkillShare!")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account is ready. Follow other learners, share what you are
		working on and log your learning every day to grow your streak.</p>
	`, name))

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send welcome email to %s: %w", email, err)
	}
	return nil
}
