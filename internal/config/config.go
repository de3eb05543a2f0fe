package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	RecoveryAPIAddress string
	SessionSecret      string
	SessionTTL         time.Duration
	ShutdownTimeout    time.Duration
	BcryptCost         int
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionSecret   = "change-me-in-production"
	defaultSessionTTL      = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		RecoveryAPIAddress: getString(lookup, "RECOVERY_API_ADDRESS", ""),
		SessionSecret:      getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:         getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		BcryptCost:         getInt(lookup, "BCRYPT_COST", 0),
	}

	fs := flag.NewFlagSet("ajicolor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RecoveryAPIAddress, "r", cfg.RecoveryAPIAddress, "Password recovery API base URL")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RecoveryAPIAddress == "" {
		return nil, fmt.Errorf("recovery API address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
