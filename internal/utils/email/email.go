package email

import (
	"fmt"
	"net/smtp"

	"github.com/SulimanFURC/BE-HMS/internal/config"
	"github.com/SulimanFURC/BE-HMS/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendDuesReminder sends an outstanding rent notification to a student
func (s *Sender) SendDuesReminder(to, name string, dues models.Money) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Outstanding Hostel Rent Reminder"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Our records show an outstanding rent balance of %s on your account.\n"+
			"Please clear your dues at the hostel office at your earliest convenience.\n"+
			"\nBest regards,\nHostel Management",
		name, dues,
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
