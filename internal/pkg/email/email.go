package email

import (
	"errors"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

// ErrNotConfigured is returned when SMTP credentials are missing outside
// of development mode.
var ErrNotConfigured = errors.New("smtp credentials not configured")

// Service defines the interface for outgoing mail.
type Service interface {
	SendCredentialsEmail(toEmail, toName, tempPassword string) error
}

// SMTPConfig holds configuration for the SMTP server. DevMode allows
// running without SMTP credentials by logging the payload instead.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	BaseURL   string
	DevMode   bool
}

type serviceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewService creates a new email Service.
func NewService(config SMTPConfig, logger zerolog.Logger) Service {
	return &serviceImpl{config: config, logger: logger}
}

// SendCredentialsEmail sends the temporary credentials of a freshly
// provisioned member account. In development mode without SMTP credentials
// the payload is logged instead so local setups stay usable; anywhere else
// missing credentials are an error and the password never hits the logs.
func (s *serviceImpl) SendCredentialsEmail(toEmail, toName, tempPassword string) error {
	if s.config.Username == "" || s.config.Password == "" {
		if s.config.DevMode {
			s.logger.Warn().
				Str("toEmail", toEmail).
				Str("tempPassword", tempPassword).
				Msg("SMTP credentials not configured - credentials email not sent. Use the password above for testing.")
			return nil
		}
		s.logger.Error().
			Str("toEmail", toEmail).
			Msg("SMTP credentials not configured - credentials email not sent")
		return ErrNotConfigured
	}

	subject := "Votre compte LABTIM"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Bienvenue sur le site du laboratoire</h2>
				<p>Bonjour %s,</p>
				<p>Un compte membre a été créé pour vous. Connectez-vous avec :</p>
				<p>Email : <strong>%s</strong><br>Mot de passe temporaire : <strong>%s</strong></p>
				<p>Vous devrez changer ce mot de passe lors de votre première connexion.</p>
				<p><a href="%s">%s</a></p>
			</div>
		</body>
		</html>
	`, toName, toEmail, tempPassword, s.config.BaseURL, s.config.BaseURL)

	return s.sendHTMLEmail(toEmail, subject, body)
}

func (s *serviceImpl) sendHTMLEmail(toEmail, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	from := s.config.FromEmail
	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.config.FromName, from, toEmail, subject, body,
	))

	if err := smtp.SendMail(addr, auth, from, []string{toEmail}, msg); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}
