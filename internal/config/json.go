package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dbelakovs/authcore/internal/flagx"
	"github.com/dbelakovs/authcore/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration for interval fields, which
// allows parsing both string values such as "10s" and integer nanoseconds.
// Fields are pointers so that keys absent from the file leave the
// corresponding Config value untouched.
type JsonConfig struct {
	DatabaseDSN       *string         `json:"database_dsn"`
	SecretKey         *string         `json:"secret_key"`
	Mode              *string         `json:"mode"`
	MinPasswordLength *int            `json:"min_password_length"`
	SaltLength        *int            `json:"salt_length"`
	SessionLength     *int            `json:"session_length"`
	HashRounds        *int            `json:"hash_rounds"`
	LockCooldown      *timex.Duration `json:"lock_cooldown"`
	TokenValidity     *timex.Duration `json:"token_validity"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
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

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.Mode != nil {
		config.Mode = Mode(*c.Mode)
	}
	if c.MinPasswordLength != nil {
		config.MinPasswordLength = *c.MinPasswordLength
	}
	if c.SaltLength != nil {
		config.SaltLength = *c.SaltLength
	}
	if c.SessionLength != nil {
		config.SessionLength = *c.SessionLength
	}
	if c.HashRounds != nil {
		config.HashRounds = *c.HashRounds
	}
	if c.LockCooldown != nil {
		config.LockCooldown = time.Duration(c.LockCooldown.Duration)
	}
	if c.TokenValidity != nil {
		config.TokenValidity = time.Duration(c.TokenValidity.Duration)
	}
}
