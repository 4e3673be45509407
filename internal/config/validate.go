package config

import (
	"fmt"
	"strings"
	"time"
)

// maxTxRetries caps LedgerConfig.TxMaxRetries.
const maxTxRetries = 10

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Ledger.validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be between 0 and max_conns (got %d)", d.MinConns)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (l *LedgerConfig) validate() error {
	if l.TxMaxRetries < 0 || l.TxMaxRetries > maxTxRetries {
		return fmt.Errorf("tx_max_retries must be between 0 and %d (got %d)", maxTxRetries, l.TxMaxRetries)
	}
	if l.TxMaxRetries > 0 && l.TxRetryBase <= 0 {
		return fmt.Errorf("tx_retry_base must be > 0 when retries are enabled (got %v)", l.TxRetryBase)
	}
	if l.TimestampPrecision != time.Microsecond {
		return fmt.Errorf("timestamp_precision must be 1us (got %v)", l.TimestampPrecision)
	}
	return nil
}

func (r *ReportConfig) validate() error {
	if r.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", r.Workers)
	}
	if r.LoaderWait < 0 {
		return fmt.Errorf("loader_wait must be >= 0 (got %v)", r.LoaderWait)
	}
	if r.LoaderBatch < 0 {
		return fmt.Errorf("loader_batch must be >= 0 (got %d)", r.LoaderBatch)
	}
	return nil
}
