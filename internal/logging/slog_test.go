package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG msg=dbg a=1",
		"level=INFO msg=inf b=2",
		"level=WARN msg=wrn c=3",
		"level=ERROR msg=err d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	child := log.With("module", "voting")
	child.Info(context.Background(), "ballot cast", "election_id", "e1")

	out := buf.String()
	assert.Contains(t, out, "module=voting")
	assert.Contains(t, out, "election_id=e1")
}

func TestNewJSONLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, slog.LevelWarn)

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "audit write failed", "action", "ADMIN_REASSIGNED")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "audit write failed", rec["msg"])
	assert.Equal(t, "ADMIN_REASSIGNED", rec["action"])
}

func TestNewJSONLogger_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, slog.LevelInfo).With("token", "f00dfeed")

	log.Info(context.Background(), "credential verified",
		"election_id", "e1", "Credential", "c0ffee", "access_token", "abc.def", "voter", "student-42")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, Redacted, rec["token"])
	assert.Equal(t, Redacted, rec["Credential"])
	assert.Equal(t, Redacted, rec["access_token"])
	assert.Equal(t, "e1", rec["election_id"])
	assert.Equal(t, "student-42", rec["voter"])
	assert.NotContains(t, buf.String(), "c0ffee")
	assert.NotContains(t, buf.String(), "f00dfeed")
}

func TestNop(t *testing.T) {
	var l Logger = Nop{}
	assert.NotPanics(t, func() {
		l.With("k", "v").Error(context.TODO(), "ignored")
	})
}
