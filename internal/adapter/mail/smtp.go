// Package mail delivers one-time codes.
package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/config"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

type SMTPMailer struct {
	client *gomail.Client
	from   string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(conf *config.Config) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(conf.SMTPPort),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
	}
	if conf.SMTPUser != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(conf.SMTPUser),
			gomail.WithPassword(conf.SMTPPassword),
		)
	}

	client, err := gomail.NewClient(conf.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: conf.MailFrom}, nil
}

func (m *SMTPMailer) SendOTP(ctx context.Context, to, code string, ttl time.Duration) error {
	msg, err := buildOTPMessage(m.from, to, code, ttl)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("deliver otp mail: %w", err)
	}
	return nil
}

func buildOTPMessage(from, to, code string, ttl time.Duration) (*gomail.Msg, error) {
	text, html, err := renderOTP(code, ttl)
	if err != nil {
		return nil, fmt.Errorf("render otp mail: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(otpSubject)
	msg.SetBodyString(gomail.TypeTextPlain, text)
	msg.AddAlternativeString(gomail.TypeTextHTML, html)
	return msg, nil
}

// LogMailer writes codes to the log instead of sending them. Development only.
type LogMailer struct{}

var _ ports.Mailer = LogMailer{}

func (LogMailer) SendOTP(_ context.Context, to, code string, ttl time.Duration) error {
	zap.L().Info("otp mail (not sent)", zap.String("to", to), zap.String("code", code), zap.Duration("ttl", ttl))
	return nil
}
