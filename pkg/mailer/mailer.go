package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"
)

// Config holds the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS (port 465) when true, STARTTLS upgrade otherwise
	Username string
	Password string
}

// Mailer is an SMTP transport. A fresh connection is established per
// operation; connection reuse is left to the mail provider.
type Mailer struct {
	cfg     Config
	timeout time.Duration
}

// DefaultTimeout bounds every dial, handshake and protocol exchange so a
// dead SMTP server surfaces as a transport error instead of a hanging request.
const DefaultTimeout = 10 * time.Second

func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg, timeout: DefaultTimeout}
}

// NewWithTimeout creates a Mailer with a custom I/O timeout.
func NewWithTimeout(cfg Config, timeout time.Duration) *Mailer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Mailer{cfg: cfg, timeout: timeout}
}

func (m *Mailer) addr() string {
	return net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
}

// connect dials the server and returns a greeted, upgraded and authenticated
// SMTP client. The caller is responsible for Quit/Close.
func (m *Mailer) connect(ctx context.Context) (*smtp.Client, error) {
	dialer := net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", m.addr())
	if err != nil {
		return nil, fmt.Errorf("mailer: dial %s: %w", m.addr(), err)
	}

	deadline := time.Now().Add(m.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	if m.cfg.Secure {
		tlsConn := tls.Client(conn, m.tlsConfig())
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, fmt.Errorf("mailer: tls handshake: %w", err)
		}
		conn = tlsConn
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("mailer: smtp greeting: %w", err)
	}

	if !m.cfg.Secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(m.tlsConfig()); err != nil {
				client.Close()
				return nil, fmt.Errorf("mailer: starttls: %w", err)
			}
		}
	}

	if m.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
			if err := client.Auth(auth); err != nil {
				client.Close()
				return nil, fmt.Errorf("mailer: auth: %w", err)
			}
		}
	}

	return client, nil
}

func (m *Mailer) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName: m.cfg.Host,
		MinVersion: tls.VersionTLS12,
	}
}

// Verify performs a lightweight connectivity and authentication check
// without sending mail.
func (m *Mailer) Verify(ctx context.Context) error {
	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	return client.Quit()
}

// Send transmits a single message, returning only after the server has
// accepted it or definitively refused it.
func (m *Mailer) Send(ctx context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("mailer: MAIL FROM: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("mailer: RCPT TO: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("mailer: DATA: %w", err)
	}
	raw, err := msg.Bytes()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("mailer: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mailer: finish body: %w", err)
	}

	return client.Quit()
}
