package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/unielect/internal/logging"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

func TestRenderInvitation(t *testing.T) {
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	fixNow(t, at)

	m := renderInvitation(Invitation{
		Email: "kofi@uni.edu", Link: "https://vote.uni.edu/accept?token=abc",
		Role: models.RoleAdmin, InviterName: "Ama Mensah", ExpiresAt: at.Add(7 * 24 * time.Hour),
	})

	assert.Equal(t, "kofi@uni.edu", m.To)
	assert.Contains(t, m.Body, "Ama Mensah has invited you")
	assert.Contains(t, m.Body, "election administrator")
	assert.Contains(t, m.Body, "https://vote.uni.edu/accept?token=abc")
	assert.Contains(t, m.Body, "from now")
}

func TestRenderAssignmentChanged(t *testing.T) {
	m := renderAssignmentChanged(AssignmentChange{Email: "a@uni.edu", AdminName: "Kofi", ElectionTitle: "SRC 2026", PreviousTitle: "Hall 2026"})
	assert.Contains(t, m.Body, `no longer managing "Hall 2026"`)
	assert.Contains(t, m.Body, `administrator of "SRC 2026"`)

	m = renderAssignmentChanged(AssignmentChange{Email: "a@uni.edu", AdminName: "Kofi", ElectionTitle: "SRC 2026"})
	assert.NotContains(t, m.Body, "no longer")
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(logging.NewJSONLogger(&buf, slog.LevelInfo))

	err := sink.SendApprovalRequested(context.Background(), ApprovalRequest{
		ApproverEmail: "dean@uni.edu", ApproverName: "Dean", ElectionID: "e-1", ElectionTitle: "SRC", RequesterName: "Ama",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"to":"dean@uni.edu"`)
	assert.Contains(t, buf.String(), `"module":"notify"`)
}

// relay plays the server side of one SMTP session on conn and reports what
// it accepted once the client quits or hangs up.
type relayed struct {
	auth string
	from string
	rcpt string
	data string
}

func relay(conn net.Conn, rejectRcpt bool) <-chan relayed {
	done := make(chan relayed, 1)
	go func() {
		defer conn.Close()
		var got relayed
		defer func() { done <- got }()

		tp := textproto.NewConn(conn)
		_ = tp.PrintfLine("220 mail.uni.edu ESMTP")
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			verb, arg, _ := strings.Cut(line, " ")
			switch strings.ToUpper(verb) {
			case "EHLO":
				_ = tp.PrintfLine("250-mail.uni.edu")
				_ = tp.PrintfLine("250 AUTH PLAIN")
			case "AUTH":
				got.auth = arg
				_ = tp.PrintfLine("235 2.7.0 accepted")
			case "MAIL":
				got.from = arg
				_ = tp.PrintfLine("250 ok")
			case "RCPT":
				got.rcpt = arg
				if rejectRcpt {
					_ = tp.PrintfLine("550 relay denied")
					continue
				}
				_ = tp.PrintfLine("250 ok")
			case "DATA":
				_ = tp.PrintfLine("354 go ahead")
				body, err := tp.ReadDotBytes()
				if err != nil {
					return
				}
				got.data = string(body)
				_ = tp.PrintfLine("250 queued")
			case "QUIT":
				_ = tp.PrintfLine("221 bye")
				return
			default:
				_ = tp.PrintfLine("502 unknown command")
			}
		}
	}()
	return done
}

func pipeDialer(server func(net.Conn)) func(context.Context, string, string) (net.Conn, error) {
	return func(context.Context, string, string) (net.Conn, error) {
		client, srv := net.Pipe()
		server(srv)
		return client, nil
	}
}

func TestSMTPSink_Deliver(t *testing.T) {
	sink := NewSMTPSink(SMTPConfig{Addr: "localhost:587", From: "noreply@uni.edu", User: "bot", Password: "pw"})
	require.NotNil(t, sink.auth)

	var session <-chan relayed
	var dialedAddr string
	sink.dial = func(ctx context.Context, network, addr string) (net.Conn, error) {
		dialedAddr = addr
		client, srv := net.Pipe()
		session = relay(srv, false)
		return client, nil
	}

	err := sink.SendAssignmentChanged(context.Background(), AssignmentChange{Email: "a@uni.edu", AdminName: "Kofi", ElectionTitle: "SRC"})
	require.NoError(t, err)

	got := <-session
	assert.Equal(t, "localhost:587", dialedAddr)
	assert.True(t, strings.HasPrefix(got.auth, "PLAIN "), "auth line %q", got.auth)
	assert.Equal(t, "FROM:<noreply@uni.edu>", got.from)
	assert.Equal(t, "TO:<a@uni.edu>", got.rcpt)
	assert.Contains(t, got.data, "Subject: Your election assignment has changed\n")
	assert.Contains(t, got.data, "\n\nHello Kofi,\n")
}

func TestSMTPSink_Errors(t *testing.T) {
	sink := NewSMTPSink(SMTPConfig{Addr: "mail.uni.edu:25", From: "noreply@uni.edu"})
	assert.Nil(t, sink.auth)

	sink.dial = pipeDialer(func(c net.Conn) { relay(c, true) })
	err := sink.SendInvitation(context.Background(), Invitation{Email: "x@uni.edu"})
	require.ErrorContains(t, err, "relay denied")

	sink.dial = func(context.Context, string, string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	}
	require.ErrorContains(t, sink.SendInvitation(context.Background(), Invitation{Email: "x@uni.edu"}), "connection refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sink.SendInvitation(ctx, Invitation{Email: "x@uni.edu"}), context.Canceled)
}

func TestSMTPSink_SilentRelay(t *testing.T) {
	sink := NewSMTPSink(SMTPConfig{Addr: "mail.uni.edu:25", From: "noreply@uni.edu"})

	// the relay accepts the connection and never greets
	var mu sync.Mutex
	var idle []net.Conn
	sink.dial = pipeDialer(func(c net.Conn) {
		mu.Lock()
		idle = append(idle, c)
		mu.Unlock()
	})
	t.Cleanup(func() {
		for _, c := range idle {
			c.Close()
		}
	})

	t.Run("deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := sink.SendInvitation(ctx, Invitation{Email: "x@uni.edu"})
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(50*time.Millisecond, cancel)

		start := time.Now()
		err := sink.SendInvitation(ctx, Invitation{Email: "x@uni.edu"})
		require.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("own timeout", func(t *testing.T) {
		short := NewSMTPSink(SMTPConfig{Addr: "mail.uni.edu:25", From: "noreply@uni.edu", Timeout: 50 * time.Millisecond})
		short.dial = sink.dial

		err := short.SendInvitation(context.Background(), Invitation{Email: "x@uni.edu"})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
