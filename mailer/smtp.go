package mailer

import (
	"context"
	"fmt"
	"io"

	"github.com/wb-go/wbf/logger"
	"gopkg.in/gomail.v2"
)

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	log    logger.Logger
}

func NewSMTPSender(cfg SMTPConfig, log logger.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
		log:    log,
	}
}

// Send opens one connection per message; there is no retry.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.from == "" {
		return fmt.Errorf("smtp sender is not configured")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, senderName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}
	for _, a := range msg.Attachments {
		content := a.Content
		m.Attach(a.Name,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	s.log.LogAttrs(ctx, logger.InfoLevel, "mail sent",
		logger.String("to", msg.To),
		logger.String("subject", msg.Subject),
	)
	return nil
}
