package infra

import (
	"fmt"
	"net/smtp"

	"github.com/gabovieira/ali300-consultores/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends the welcome and report mails through a plain-auth SMTP relay.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
	}
}

// Send delivers a plain-text email. A non-empty attachmentPath attaches the
// file (the generated PDF report).
func (m *Mailer) Send(to, subject, body, attachmentPath string) error {
	e := email.NewEmail()
	e.From = fmt.Sprintf("ALI300 Consultores <%s>", m.user)
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if attachmentPath != "" {
		if _, err := e.AttachFile(attachmentPath); err != nil {
			return fmt.Errorf("mailer: adjuntar %s: %w", attachmentPath, err)
		}
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	return e.Send(addr, smtp.PlainAuth("", m.user, m.password, m.host))
}
