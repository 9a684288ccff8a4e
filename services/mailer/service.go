package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/customeros/mailsherpa/mailvalidate"
	"github.com/opentracing/opentracing-go"

	"github.com/customeros/unsublink/interfaces"
	apperrors "github.com/customeros/unsublink/internal/errors"
	"github.com/customeros/unsublink/internal/logger"
	"github.com/customeros/unsublink/internal/tracing"
	"github.com/customeros/unsublink/internal/utils"
)

type Config struct {
	Server      string `env:"SMTP_SERVER"`
	Port        int    `env:"SMTP_PORT" envDefault:"587"`
	Username    string `env:"SMTP_USERNAME"`
	Password    string `env:"SMTP_PASSWORD"`
	FromAddress string `env:"SMTP_FROM_ADDRESS"`
	FromDomain  string `env:"SMTP_FROM_DOMAIN"`
}

type smtpMailSender struct {
	cfg *Config
	log logger.Logger
}

// NewSMTPMailSender returns the MailSender that performs email-type
// unsubscribe actions over plain SMTP.
func NewSMTPMailSender(cfg *Config, log logger.Logger) interfaces.MailSender {
	return &smtpMailSender{cfg: cfg, log: log}
}

func (s *smtpMailSender) SendUnsubscribeEmail(ctx context.Context, toAddress, subject, body string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "smtpMailSender.SendUnsubscribeEmail")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	validation := mailvalidate.ValidateEmailSyntax(toAddress)
	if !validation.IsValid {
		tracing.TraceErr(span, apperrors.ErrInvalidMailTarget)
		return apperrors.ErrInvalidMailTarget
	}

	buffer := s.prepareMessage(toAddress, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Server, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Server)

	err := smtp.SendMail(addr, auth, s.cfg.FromAddress, []string{toAddress}, buffer.Bytes())
	if err != nil {
		err = fmt.Errorf("failed to send email: %w", err)
		tracing.TraceErr(span, err)
		return err
	}

	s.log.Infof("sent unsubscribe email to %s", toAddress)
	return nil
}

func (s *smtpMailSender) prepareMessage(toAddress, subject, body string) *bytes.Buffer {
	buffer := bytes.NewBuffer(nil)

	fmt.Fprintf(buffer, "From: %s\r\n", s.cfg.FromAddress)
	fmt.Fprintf(buffer, "To: %s\r\n", toAddress)
	fmt.Fprintf(buffer, "Subject: %s\r\n", subject)
	fmt.Fprintf(buffer, "Message-ID: %s\r\n", utils.GenerateMessageID(s.cfg.FromDomain, toAddress))
	fmt.Fprintf(buffer, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	buffer.WriteString("MIME-Version: 1.0\r\n")
	buffer.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buffer.WriteString("\r\n")
	buffer.WriteString(body)
	buffer.WriteString("\r\n")

	return buffer
}
