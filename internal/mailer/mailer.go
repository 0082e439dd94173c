package mailer

import (
	"fmt"
	"net"
	"net/smtp"

	"pharmaguard/functions/internal/config"
	"pharmaguard/functions/internal/domain"
)

// Fixed addresses: alerts always flow from the platform account to the
// fleet manager inbox, never addresses taken from the payload.
const (
	Sender    = "alert@pharmaguard.com"
	Recipient = "manager@pharmaguard.com"
)

const sentStatus = "Sent to MailHog"

type Mailer struct {
	addr string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		addr: net.JoinHostPort(cfg.SMTPServer, cfg.SMTPPort),
	}
}

// Addr reports the relay endpoint the mailer submits to.
func (m *Mailer) Addr() string {
	return m.addr
}

// SendAlert builds the single-part alert email and submits it once. The
// connection is opened and closed inside the call; there is no retry and
// no pooling.
func (m *Mailer) SendAlert(payload *domain.AlertPayload) (*domain.DeliveryConfirmation, error) {
	msg := buildMessage(payload)

	if err := smtp.SendMail(m.addr, nil, Sender, []string{Recipient}, msg); err != nil {
		return nil, fmt.Errorf("smtp submit to %s failed: %w", m.addr, err)
	}

	return &domain.DeliveryConfirmation{
		Status: sentStatus,
		To:     Recipient,
	}, nil
}

func buildMessage(payload *domain.AlertPayload) []byte {
	body := fmt.Sprintf("CRITICAL ALERT - TRUCK %s\n\n%s", payload.TruckID, payload.Message)

	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n",
		Sender,
		Recipient,
		payload.Subject,
	)

	return []byte(headers + body)
}
