package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Report   ReportConfig   `yaml:"report"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LedgerConfig controls how audited operations run their transactions.
type LedgerConfig struct {
	// TxMaxRetries is how many times a transaction that lost a lock race
	// is rerun. Zero disables retries.
	TxMaxRetries int           `yaml:"tx_max_retries" env:"LEDGER_TX_MAX_RETRIES" env-default:"3"`
	TxRetryBase  time.Duration `yaml:"tx_retry_base"  env:"LEDGER_TX_RETRY_BASE"  env-default:"10ms"`
	// TimestampPrecision must match the resolution of the ledger columns.
	TimestampPrecision time.Duration `yaml:"timestamp_precision" env:"LEDGER_TIMESTAMP_PRECISION" env-default:"1us"`
}

// ReportConfig tunes compliance report assembly.
type ReportConfig struct {
	Workers     int           `yaml:"workers"      env:"REPORT_WORKERS"      env-default:"4"`
	LoaderWait  time.Duration `yaml:"loader_wait"  env:"REPORT_LOADER_WAIT"  env-default:"2ms"`
	LoaderBatch int           `yaml:"loader_batch" env:"REPORT_LOADER_BATCH" env-default:"100"`
}
