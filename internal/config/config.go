// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Provider holds the HTTP client knobs shared by both verification providers.
// Environment overrides are prefixed per provider, e.g. DATAPRO_TIMEOUT.
type Provider struct {
	// Timeout bounds a single HTTP attempt.
	Timeout time.Duration `env:"TIMEOUT" env-default:"30s" yaml:"timeout"`
	// MaxRetries is the number of attempts per verification.
	MaxRetries int `env:"MAX_RETRIES" env-default:"3" yaml:"maxRetries"`
	// BackoffBase is the delay before the second attempt; it doubles afterwards.
	BackoffBase time.Duration `env:"BACKOFF_BASE" env-default:"1s" yaml:"backoffBase"`
	// RateLimit is the number of calls allowed per RateWindow on this instance.
	RateLimit  int           `env:"RATE_LIMIT"  env-default:"50" yaml:"rateLimit"`
	RateWindow time.Duration `env:"RATE_WINDOW" env-default:"1m" yaml:"rateWindow"`
	// MaxQueue bounds callers waiting for a rate limit token.
	MaxQueue int `env:"MAX_QUEUE" env-default:"100" yaml:"maxQueue"`
	// SharedRateLimit, when positive, adds a Redis fixed window limiter shared
	// by every instance.
	SharedRateLimit int `env:"SHARED_RATE_LIMIT" env-default:"0" yaml:"sharedRateLimit"`
}

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR"                env-default:":8080"    yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        env-default:"1m"       yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"      yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT"       env-default:"5m"       yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT"        env-default:"2m"       yaml:"idleTimeout"`
		// RequestTimeout must leave room for a full retry cycle of a provider call.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT"   env-default:"2m"       yaml:"requestTimeout"`
		MaxHeaderBytes int           `env:"HTTP_MAX_HEADER_BYTES"  env-default:"0"        yaml:"maxHeaderBytes"`
		MetricsPath    string        `env:"HTTP_METRICS_PATH"      env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigin is sent as Access-Control-Allow-Origin.
		CORSOrigin string `env:"HTTP_CORS_ORIGIN" env-default:"*" yaml:"corsOrigin"`
	} `yaml:"http"`

	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"myuser"     yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"mypassword" yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost"  yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"       yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"    yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"idverify"   yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"         yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"8"          yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"         yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"         yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis backs the shared rate limiters. An empty Addr disables them.
	Redis struct {
		Addr     string `env:"REDIS_ADDR"     env-default:""  yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" env-default:""  yaml:"password"`
		DB       int    `env:"REDIS_DB"       env-default:"0" yaml:"db"`
	} `yaml:"redis"`

	JWT struct {
		// PublicKey verifies bearer tokens on the API.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is only needed by the jwt command.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	Datapro struct {
		BaseURL   string `env:"DATAPRO_API_URL"    env-default:"https://api.datapronigeria.com" yaml:"baseURL"`
		ServiceID string `env:"DATAPRO_SERVICE_ID" yaml:"serviceID"`
		Provider  `env-prefix:"DATAPRO_" yaml:",inline"`
	} `yaml:"datapro"`

	VerifyData struct {
		BaseURL   string `env:"VERIFYDATA_API_URL"    env-default:"https://vd.villextra.com" yaml:"baseURL"`
		SecretKey string `env:"VERIFYDATA_SECRET_KEY" yaml:"secretKey"`
		Provider  `env-prefix:"VERIFYDATA_" yaml:",inline"`
	} `yaml:"verifydata"`

	Encryption struct {
		// Key is the hex encoded 32 byte AES key.
		Key string `env:"ENCRYPTION_KEY" yaml:"key"`
	} `yaml:"encryption"`

	Dedup struct {
		MaxSize       int           `env:"DEDUP_MAX_SIZE"       env-default:"10000" yaml:"maxSize"`
		TTL           time.Duration `env:"DEDUP_TTL"            env-default:"5m"    yaml:"ttl"`
		SweepInterval time.Duration `env:"DEDUP_SWEEP_INTERVAL" env-default:"5m"    yaml:"sweepInterval"`
	} `yaml:"dedup"`

	Worker struct {
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"5" yaml:"maxWorkers"`
		// MaxAttempts is the number of river attempts per verification job.
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// RateLimitSnooze delays a job rejected by a rate limiter.
		RateLimitSnooze time.Duration `env:"WORKER_RATE_LIMIT_SNOOZE" env-default:"30s" yaml:"rateLimitSnooze"`
		// MaxBatchSize caps the entries accepted by one submission.
		MaxBatchSize int `env:"WORKER_MAX_BATCH_SIZE" env-default:"1000" yaml:"maxBatchSize"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"30s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Defaults returns a Config filled from env-default tags and the
// environment only.
func Defaults() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
