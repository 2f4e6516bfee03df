package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/unielect/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "UNIELECT_"

// parseEnv loads an optional .env file and then copies UNIELECT_* variables
// into config. The file is the one given with -env/-E, or ./.env when present.
// Variables already set in the process environment win over the file.
// An unreadable explicit file or a malformed duration panics.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(err)
			}
			*dst = d
		}
	}

	str("GRPC_ADDR", &config.EndpointAddrGRPC)
	str("DATABASE_DSN", &config.DatabaseDSN)
	str("SECRET_KEY", &config.SecretKey)
	dur("ACCESS_TOKEN_VALIDITY", &config.AccessTokenValidityDuration)
	dur("INVITATION_VALIDITY", &config.InvitationValidityDuration)
	str("INVITE_BASE_URL", &config.InviteBaseURL)
	str("BOOTSTRAP_EMAIL", &config.BootstrapEmail)
	str("SMTP_ADDR", &config.SMTPAddr)
	str("SMTP_FROM", &config.SMTPFrom)
	str("SMTP_USER", &config.SMTPUser)
	str("SMTP_PASSWORD", &config.SMTPPassword)
	str("S3_USER", &config.S3RootUser)
	str("S3_PASSWORD", &config.S3RootPassword)
	str("S3_BUCKET", &config.S3Bucket)
	str("S3_REGION", &config.S3Region)
	str("S3_ENDPOINT", &config.S3BaseEndpoint)
}
