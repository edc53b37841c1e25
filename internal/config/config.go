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
	RunAddress        string
	DatabaseURI       string
	SessionSecret     string
	StoreTZOffset     string
	ReconcileInterval time.Duration
	ReconcileBatch    int
	WorkerPoolSize    int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultSessionSecret     = "change-me-in-production"
	defaultStoreTZOffset     = "+00:00"
	defaultReconcileInterval = time.Minute
	defaultReconcileBatch    = 32
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		SessionSecret:     getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		StoreTZOffset:     getString(lookup, "STORE_TZ_OFFSET", defaultStoreTZOffset),
		ReconcileInterval: getDuration(lookup, "RECONCILE_INTERVAL", defaultReconcileInterval),
		ReconcileBatch:    getInt(lookup, "RECONCILE_BATCH", defaultReconcileBatch),
		WorkerPoolSize:    getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		reconcileIntervalStr = cfg.ReconcileInterval.String()
		shutdownTimeoutStr   = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.StoreTZOffset, "tz-offset", cfg.StoreTZOffset, "Fixed store timezone offset, e.g. -05:00")
	fs.StringVar(&reconcileIntervalStr, "reconcile-interval", reconcileIntervalStr, "Interval between close-time reconciliation sweeps")
	fs.IntVar(&cfg.ReconcileBatch, "reconcile-batch", cfg.ReconcileBatch, "Maximum events per reconciliation sweep")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent reconcile workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ReconcileInterval, err = time.ParseDuration(reconcileIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reconcile interval: %w", err)
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

	if cfg.ReconcileInterval <= 0 {
		cfg.ReconcileInterval = defaultReconcileInterval
	}

	if cfg.ReconcileBatch <= 0 {
		cfg.ReconcileBatch = defaultReconcileBatch
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if _, err := cfg.StoreLocation(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// StoreLocation returns the fixed-offset location all wall-clock arithmetic
// happens in. Offsets use the "±HH:MM" form; no DST conversion is performed.
func (c *Config) StoreLocation() (*time.Location, error) {
	offset := c.StoreTZOffset
	if offset == "" {
		offset = defaultStoreTZOffset
	}
	if len(offset) != 6 || (offset[0] != '+' && offset[0] != '-') || offset[3] != ':' {
		return nil, fmt.Errorf("invalid store timezone offset %q", c.StoreTZOffset)
	}

	hours, err := strconv.Atoi(offset[1:3])
	if err != nil {
		return nil, fmt.Errorf("invalid store timezone offset %q", c.StoreTZOffset)
	}
	minutes, err := strconv.Atoi(offset[4:6])
	if err != nil || hours > 14 || minutes > 59 {
		return nil, fmt.Errorf("invalid store timezone offset %q", c.StoreTZOffset)
	}

	seconds := (hours*60 + minutes) * 60
	if offset[0] == '-' {
		seconds = -seconds
	}
	if seconds == 0 {
		return time.UTC, nil
	}
	return time.FixedZone("STORE"+offset, seconds), nil
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
