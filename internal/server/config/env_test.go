package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("reads prefixed variables", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("UNIELECT_DATABASE_DSN", "memory")
		t.Setenv("UNIELECT_INVITATION_VALIDITY", "36h")
		t.Setenv("UNIELECT_SMTP_ADDR", "mail:2525")

		cfg := &Config{}
		parseEnv(cfg)

		assert.Equal(t, "memory", cfg.DatabaseDSN)
		assert.Equal(t, 36*time.Hour, cfg.InvitationValidityDuration)
		assert.Equal(t, "mail:2525", cfg.SMTPAddr)
	})

	t.Run("loads explicit env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.env")
		require.NoError(t, os.WriteFile(path, []byte("UNIELECT_BOOTSTRAP_EMAIL=root@uni.edu\n"), 0o600))
		os.Args = []string{"testbin", "-E", path}
		t.Cleanup(func() { _ = os.Unsetenv("UNIELECT_BOOTSTRAP_EMAIL") })

		cfg := &Config{}
		parseEnv(cfg)

		assert.Equal(t, "root@uni.edu", cfg.BootstrapEmail)
	})

	t.Run("bad duration panics", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("UNIELECT_ACCESS_TOKEN_VALIDITY", "forever")
		assert.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("missing explicit file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "none.env")}
		assert.Panics(t, func() { parseEnv(&Config{}) })
	})
}
