package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the DNS-over-HTTPS upstream, the enrichment pipeline, background workers and
// graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"enricher" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// SQLite configures the local database used by the enrich command when no
	// PostgreSQL server is available
	SQLite struct {
		// Path is the database file
		Path string `env:"SQLITE_PATH" env-default:"enricher.db" yaml:"path"`
	} `yaml:"sqlite"`

	// DoH configures the DNS-over-HTTPS upstream
	DoH struct {
		// Endpoint is the absolute URL of the DoH service
		Endpoint string `env:"DOH_ENDPOINT" env-default:"https://cloudflare-dns.com/dns-query" yaml:"endpoint"`
		// Format is the request encoding: json (application/dns-json) or wire (RFC 8484)
		Format string `env:"DOH_FORMAT" env-default:"json" yaml:"format"`
		// Timeout bounds a single query
		Timeout time.Duration `env:"DOH_TIMEOUT" env-default:"5s" yaml:"timeout"`
		// RequestsPerSecond limits outgoing queries; 0 disables the limit
		RequestsPerSecond float64 `env:"DOH_REQUESTS_PER_SECOND" env-default:"0" yaml:"requestsPerSecond"`
		// Burst is the number of queries allowed above RequestsPerSecond momentarily
		Burst int `env:"DOH_BURST" env-default:"30" yaml:"burst"`
		// DMARCOrgFallback queries the organizational domain when a domain has no DMARC record
		DMARCOrgFallback bool `env:"DOH_DMARC_ORG_FALLBACK" env-default:"false" yaml:"dmarcOrgFallback"`
	} `yaml:"doh"`

	// Pipeline configures CSV processing and enrichment
	Pipeline struct {
		// BatchSize is the number of domains resolved concurrently
		BatchSize int `env:"PIPELINE_BATCH_SIZE" env-default:"10" yaml:"batchSize"`
		// BatchPause is the pause between two batches
		BatchPause time.Duration `env:"PIPELINE_BATCH_PAUSE" env-default:"50ms" yaml:"batchPause"`
		// MaxDomains caps the unique domains enriched per run
		MaxDomains int `env:"PIPELINE_MAX_DOMAINS" env-default:"2000" yaml:"maxDomains"`
		// DetectHeader scans the columns whose header names a domain instead of column 0
		DetectHeader bool `env:"PIPELINE_DETECT_HEADER" env-default:"false" yaml:"detectHeader"`
		// MaxDownloadBytes caps the size of a downloaded CSV file
		MaxDownloadBytes int64 `env:"PIPELINE_MAX_DOWNLOAD_BYTES" env-default:"52428800" yaml:"maxDownloadBytes"`
		// DownloadTimeout bounds the download of a CSV file
		DownloadTimeout time.Duration `env:"PIPELINE_DOWNLOAD_TIMEOUT" env-default:"1m" yaml:"downloadTimeout"`
		// WriteMode selects how records are persisted: bulk or row
		WriteMode string `env:"PIPELINE_WRITE_MODE" env-default:"bulk" yaml:"writeMode"`
	} `yaml:"pipeline"`

	// Worker configures the background job workers
	Worker struct {
		// MaxWorkers is the number of runs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
		// MaxAttempts is the number of attempts of a run before it is discarded
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// UniquePeriod is the window in which a second trigger for the same file is ignored
		UniquePeriod time.Duration `env:"WORKER_UNIQUE_PERIOD" env-default:"10m" yaml:"uniquePeriod"`
		// JobTimeout bounds a single attempt of a run
		JobTimeout time.Duration `env:"WORKER_JOB_TIMEOUT" env-default:"30m" yaml:"jobTimeout"`
	} `yaml:"worker"`

	// JWT configures bearer token authentication of the API
	JWT struct {
		// PublicKey is the PEM encoded RSA public key verifying tokens; empty disables authentication
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command to mint tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from environment variables only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
