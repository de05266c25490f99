// Package email delivers calendar-event notifications over SMTP. The email
// service is a consumed external system: the sender is disabled by default
// and a no-op when disabled.
package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agrovia/farm-management/internal/core/ports"
)

// Config holds SMTP sender configuration.
type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender implements ports.Notifier over plain SMTP.
type Sender struct {
	config Config
	auth   smtp.Auth
	log    zerolog.Logger
}

// NewSender creates an SMTP sender. Returns an error when enabled but
// missing required settings.
func NewSender(config Config, log zerolog.Logger) (*Sender, error) {
	if config.Enabled {
		if config.Host == "" {
			return nil, errors.New("email sender: SMTP host is required when enabled")
		}
		if config.From == "" {
			return nil, errors.New("email sender: from address is required when enabled")
		}
	}
	if config.Port == 0 {
		config.Port = 587
	}

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	log.Info().
		Bool("enabled", config.Enabled).
		Str("smtp_host", config.Host).
		Int("smtp_port", config.Port).
		Msg("email sender configured")

	return &Sender{config: config, auth: auth, log: log}, nil
}

// Send delivers a single calendar-event notification.
func (s *Sender) Send(ctx context.Context, n ports.EventNotification) error {
	if !s.config.Enabled {
		s.log.Debug().Str("recipient", n.Recipient).Msg("email sender disabled, skipping send")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := "New event added: " + n.Title
	body := fmt.Sprintf(
		"Hi,\r\n\r\nA new event was added to your action calendar:\r\n\r\nTitle: %s\r\nDate: %s\r\nType: %s\r\nDescription: %s\r\n",
		n.Title, n.Date.Format("2006-01-02"), n.EventType, n.Description,
	)

	var msg strings.Builder
	msg.WriteString("From: " + s.config.From + "\r\n")
	msg.WriteString("To: " + n.Recipient + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	if err := smtp.SendMail(addr, s.auth, s.config.From, []string{n.Recipient}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
