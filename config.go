package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
)

const envPrefix = "SHIP_REPORT_"

// Config is read from SHIP_REPORT_* environment variables, optionally
// seeded from a .env file in the working directory.
type Config struct {
	Addr               string        `env:"ADDR"                 envDefault:":8501"`
	SessionKey         string        `env:"SESSION_KEY"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"5m"`
	AccessPasswordHash string        `env:"ACCESS_PASSWORD_HASH"`
	SecureCookies      bool          `env:"SECURE_COOKIES"       envDefault:"false"`
	LogLevel           string        `env:"LOG_LEVEL"            envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT"           envDefault:"json"`
}

// loadConfig reads .env (if present) and then the environment.
func loadConfig() (Config, error) {
	return loadConfigFrom(".env", os.Environ())
}

// loadConfigFrom layers environ over the variables in dotenv. A missing file
// is skipped; an unreadable or malformed one is an error. Values holding a
// '$', such as bcrypt hashes, must be single-quoted in the file or godotenv
// expands them.
func loadConfigFrom(dotenv string, environ []string) (Config, error) {
	vars, err := godotenv.Read(dotenv)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
	}
	if vars == nil {
		vars = make(map[string]string, len(environ))
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return parseConfig(vars)
}

// parseConfig parses from environ when non-nil, otherwise from the process
// environment.
func parseConfig(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: envPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionIdleTimeout <= 0 {
		return Config{}, fmt.Errorf("parse env: %sSESSION_IDLE_TIMEOUT must be positive", envPrefix)
	}
	return cfg, nil
}

// AccessGated reports whether the form requires a password.
func (c Config) AccessGated() bool {
	return c.AccessPasswordHash != ""
}

// sessionKey returns the configured cookie key, or a random one that lasts
// for the life of the process.
func (c Config) sessionKey() []byte {
	if c.SessionKey != "" {
		return []byte(c.SessionKey)
	}
	return securecookie.GenerateRandomKey(32)
}
