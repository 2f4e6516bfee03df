package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "memory", "-s", "secret",
			"-t", "15", "-i", "48", "-l", "https://vote.uni.edu/accept", "-x", "root@uni.edu",
			"-m", "mail.uni.edu:587", "-f", "noreply@uni.edu", "-n", "bot", "-w", "pw",
			"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrGRPC:            "127.0.0.1:9090",
				DatabaseDSN:                 "memory",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 15 * time.Minute,
				InvitationValidityDuration:  48 * time.Hour,
				InviteBaseURL:               "https://vote.uni.edu/accept",
				BootstrapEmail:              "root@uni.edu",
				SMTPAddr:                    "mail.uni.edu:587",
				SMTPFrom:                    "noreply@uni.edu",
				SMTPUser:                    "bot",
				SMTPPassword:                "pw",
				S3RootUser:                  "user",
				S3RootPassword:              "password",
				S3Bucket:                    "bucket",
				S3Region:                    "us-west-1",
				S3BaseEndpoint:              "http://endpoint",
			}},
		{name: "foreign flags are ignored", args: []string{"cmd", "-c", "conf.json", "-E", ".env", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"}},
		{name: "bad int", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
