package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/Facu14carrizo/StuntProAR/internal/config"
	"github.com/Facu14carrizo/StuntProAR/internal/logger"
)

// Sender delivers transactional mail. Delivery is best effort and never
// blocks the request that triggered it.
type Sender interface {
	SendWelcome(to, fullName string) error
}

type smtpSender struct {
	cfg config.EmailConfig
}

// New returns an SMTP sender, or a no-op sender when email is disabled
// in the config (the default for local development).
func New(cfg config.EmailConfig) Sender {
	if !cfg.Enabled {
		return noopSender{}
	}
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) SendWelcome(to, fullName string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Bienvenido a StuntPro AR")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>¡Hola %s!</h2>
		<p>Tu cuenta en StuntPro AR ya está activa.</p>
		<p>Ahora podés ver el contenido premium y contactar a los dobles de riesgo directamente.</p>
	`, fullName))

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	return nil
}

type noopSender struct{}

func (noopSender) SendWelcome(to, _ string) error {
	logger.Debug("email disabled, skipping welcome mail", "to", to)
	return nil
}
