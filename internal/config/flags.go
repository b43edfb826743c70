package config

import (
	"flag"
	"os"
	"time"

	"github.com/dbelakovs/authcore/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-s string   token HMAC secret key
//	-m string   issuance mode: "token" or "session"
//	-p int      minimum password length
//	-l int      lock cooldown, seconds
//	-t int      token validity, minutes (0 = no expiry)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-m", "-p", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	mode := fs.String("m", string(config.Mode), "issuance mode (token|session)")
	fs.IntVar(&config.MinPasswordLength, "p", config.MinPasswordLength, "minimum password length")

	lockCooldown := fs.Int("l", int(config.LockCooldown.Seconds()), "lock cooldown (in seconds)")
	tokenValidity := fs.Int("t", int(config.TokenValidity.Minutes()), "token validity (in minutes, 0 = no expiry)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.Mode = Mode(*mode)
	config.LockCooldown = time.Duration(*lockCooldown) * time.Second
	config.TokenValidity = time.Duration(*tokenValidity) * time.Minute
}
