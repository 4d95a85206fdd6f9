package email

import (
	"crypto/tls"
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// MailSender ส่งอีเมล HTML หนึ่งฉบับ
type MailSender interface {
	Send(to, subject, html string) error
}

// SMTPConfig ค่าที่ใช้เชื่อมต่อ SMTP (โหลดจาก SMTP_* ใน config)
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

// Missing lists the SMTP_* variables that are not set.
func (c SMTPConfig) Missing() []string {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.Port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if c.User == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.Pass == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if c.From == "" {
		missing = append(missing, "SMTP_FROM")
	}
	return missing
}

type SMTPSender struct {
	from     string
	fromName string
	dialer   *gomail.Dialer
}

// NewSMTPSender returns an error naming every missing SMTP_* variable;
// callers treat that as "email not configured".
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if missing := cfg.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("missing SMTP env: %s", strings.Join(missing, ", "))
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}

	return &SMTPSender{from: cfg.From, fromName: cfg.FromName, dialer: d}, nil
}

func (s *SMTPSender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	if s.fromName != "" {
		m.SetAddressHeader("From", s.from, s.fromName)
	} else {
		m.SetHeader("From", s.from)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
