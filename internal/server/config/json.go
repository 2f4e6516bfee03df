package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/unielect/internal/flagx"
	"github.com/dmitrijs2005/unielect/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON configuration file. Duration
// fields accept strings such as "15m" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	InvitationValidityDuration  timex.Duration `json:"invitation_validity_duration"`
	InviteBaseURL               string         `json:"invite_base_url"`
	BootstrapEmail              string         `json:"bootstrap_email"`
	SMTPAddr                    string         `json:"smtp_addr"`
	SMTPFrom                    string         `json:"smtp_from"`
	SMTPUser                    string         `json:"smtp_user"`
	SMTPPassword                string         `json:"smtp_password"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
}

// parseJson overlays the file named by -c/-config onto config. Keys absent
// from the file keep their current values. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	str := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	dur := func(dst *time.Duration, v timex.Duration) {
		if v.Duration != 0 {
			*dst = v.Duration
		}
	}

	str(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	str(&config.DatabaseDSN, c.DatabaseDSN)
	str(&config.SecretKey, c.SecretKey)
	dur(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	dur(&config.InvitationValidityDuration, c.InvitationValidityDuration)
	str(&config.InviteBaseURL, c.InviteBaseURL)
	str(&config.BootstrapEmail, c.BootstrapEmail)
	str(&config.SMTPAddr, c.SMTPAddr)
	str(&config.SMTPFrom, c.SMTPFrom)
	str(&config.SMTPUser, c.SMTPUser)
	str(&config.SMTPPassword, c.SMTPPassword)
	str(&config.S3RootUser, c.S3RootUser)
	str(&config.S3RootPassword, c.S3RootPassword)
	str(&config.S3Bucket, c.S3Bucket)
	str(&config.S3Region, c.S3Region)
	str(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}
