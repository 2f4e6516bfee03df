package notify

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

const defaultSMTPTimeout = 30 * time.Second

type SMTPConfig struct {
	Addr     string // host:port
	From     string
	User     string
	Password string
	// Timeout bounds one delivery when the caller's context has a later
	// deadline or none. Zero means 30s.
	Timeout time.Duration
}

// SMTPSink delivers plain-text mail through one relay. Every delivery runs
// on its own connection and never outlives the caller's context.
type SMTPSink struct {
	cfg     SMTPConfig
	host    string
	auth    smtp.Auth
	timeout time.Duration
	dial    func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewSMTPSink(cfg SMTPConfig) *SMTPSink {
	host, _, err := net.SplitHostPort(cfg.Addr)
	if err != nil {
		host = cfg.Addr
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}
	s := &SMTPSink{
		cfg:     cfg,
		host:    host,
		timeout: timeout,
		dial:    (&net.Dialer{Timeout: timeout}).DialContext,
	}
	if cfg.User != "" {
		s.auth = smtp.PlainAuth("", cfg.User, cfg.Password, host)
	}
	return s
}

func (s *SMTPSink) deliver(ctx context.Context, m message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(strings.ReplaceAll(m.Body, "\n", "\r\n"))

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	conn, err := s.dial(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return s.wrap(ctx, "smtp dial", err)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		_ = conn.Close()
		return s.wrap(ctx, "smtp deadline", err)
	}
	// unblock any pending read or write as soon as the caller gives up
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Unix(1, 0)) })
	defer stop()

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return s.wrap(ctx, "smtp greeting", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return s.wrap(ctx, "smtp starttls", err)
		}
	}
	if s.auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(s.auth); err != nil {
				return s.wrap(ctx, "smtp auth", err)
			}
		}
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return s.wrap(ctx, "smtp mail from", err)
	}
	if err := c.Rcpt(m.To); err != nil {
		return s.wrap(ctx, "smtp rcpt to", err)
	}
	w, err := c.Data()
	if err != nil {
		return s.wrap(ctx, "smtp data", err)
	}
	if _, err := w.Write([]byte(b.String())); err != nil {
		return s.wrap(ctx, "smtp send", err)
	}
	if err := w.Close(); err != nil {
		return s.wrap(ctx, "smtp send", err)
	}
	return s.wrap(ctx, "smtp quit", c.Quit())
}

// wrap prefers the context error so that callers can tell a cancelled or
// timed out delivery from a relay rejection.
func (s *SMTPSink) wrap(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", op, ctxErr)
	}
	if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
		return fmt.Errorf("%s: %w", op, context.DeadlineExceeded)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func (s *SMTPSink) SendInvitation(ctx context.Context, msg Invitation) error {
	return s.deliver(ctx, renderInvitation(msg))
}

func (s *SMTPSink) SendApprovalRequested(ctx context.Context, msg ApprovalRequest) error {
	return s.deliver(ctx, renderApprovalRequested(msg))
}

func (s *SMTPSink) SendAssignmentChanged(ctx context.Context, msg AssignmentChange) error {
	return s.deliver(ctx, renderAssignmentChanged(msg))
}
