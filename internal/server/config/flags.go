package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/unielect/internal/flagx"
)

var serverFlags = []string{
	"-a", "-d", "-s", "-t", "-i", "-l", "-x",
	"-m", "-f", "-n", "-w",
	"-u", "-p", "-b", "-g", "-e",
}

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN, or "memory"
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-i int      invitation validity, hours
//	-l string   invitation accept URL
//	-x string   bootstrap SUPERADMIN e-mail
//	-m string   SMTP relay host:port
//	-f string   SMTP sender address
//	-n string   SMTP user
//	-w string   SMTP password
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// os.Args is first filtered with flagx.FilterArgs so the -c/-E flags of the
// other layers do not reach this FlagSet.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	invitationValidity := fs.Int("i", int(config.InvitationValidityDuration.Hours()), "invitation validity (in hours)")

	fs.StringVar(&config.InviteBaseURL, "l", config.InviteBaseURL, "invitation accept URL")
	fs.StringVar(&config.BootstrapEmail, "x", config.BootstrapEmail, "bootstrap superadmin e-mail")

	fs.StringVar(&config.SMTPAddr, "m", config.SMTPAddr, "SMTP relay address")
	fs.StringVar(&config.SMTPFrom, "f", config.SMTPFrom, "SMTP sender")
	fs.StringVar(&config.SMTPUser, "n", config.SMTPUser, "SMTP user")
	fs.StringVar(&config.SMTPPassword, "w", config.SMTPPassword, "SMTP password")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 archive bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
	config.InvitationValidityDuration = time.Duration(*invitationValidity) * time.Hour
}
