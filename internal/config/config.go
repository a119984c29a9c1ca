// Package config loads the process settings from SHOWRUNNERS_* environment
// variables. A .env file in the working directory is read first when present.
package config

import (
	"fmt"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "SHOWRUNNERS"

type Config struct {
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string        `envconfig:"SERVICE_NAME" default:"showrunners" validate:"required"`
	TelemetryEnabled bool          `envconfig:"TELEMETRY_ENABLED" default:"false"`
	KeysDir          string        `envconfig:"KEYS_DIR" default:"./keys" validate:"required"`
	IOTimeout        time.Duration `envconfig:"IO_TIMEOUT" default:"10s" validate:"gt=0"`
	JobTimeout       time.Duration `envconfig:"JOB_TIMEOUT" default:"5m" validate:"gt=0"`

	Storage    Storage
	Push       Push
	Chain      Chain
	Retry      Retry
	Gas        Gas
	Governance Governance
	News       News
}

type Storage struct {
	Backend       string        `envconfig:"BACKEND" default:"redis" validate:"oneof=redis postgres"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required_if=Backend redis"`
	RedisUsername string        `envconfig:"REDIS_USERNAME"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	PostgresDSN   string        `envconfig:"POSTGRES_DSN" validate:"required_if=Backend postgres"`
	GuardTTL      time.Duration `envconfig:"GUARD_TTL" default:"10m" validate:"gt=0"`
}

type Push struct {
	Endpoint string `envconfig:"ENDPOINT" default:"https://backend.epns.io/apis" validate:"required,url"`
	Env      string `envconfig:"ENV" default:"prod" validate:"oneof=prod staging dev"`

	// OffChain queues failed sends for retry unless a request says otherwise.
	OffChain bool `envconfig:"OFF_CHAIN" default:"true"`
}

type Chain struct {
	RPCURL  string `envconfig:"RPC_URL" default:"http://localhost:8545" validate:"required,url"`
	ChainID int64  `envconfig:"CHAIN_ID" default:"1" validate:"gt=0"`
}

type Retry struct {
	Interval   time.Duration `envconfig:"INTERVAL" default:"1m" validate:"gt=0"`
	BatchLimit int           `envconfig:"BATCH_LIMIT" default:"50" validate:"gt=0"`
	MaxRetries int           `envconfig:"MAX_RETRIES" default:"5" validate:"gt=0"`
}

type Gas struct {
	Enabled       bool          `envconfig:"ENABLED" default:"true"`
	Address       string        `envconfig:"ADDRESS" validate:"omitempty,eth_addr"`
	Interval      time.Duration `envconfig:"INTERVAL" default:"5m" validate:"gt=0"`
	ThresholdGwei int64         `envconfig:"THRESHOLD_GWEI" default:"50" validate:"gt=0"`
}

type Governance struct {
	Enabled     bool          `envconfig:"ENABLED" default:"false"`
	Address     string        `envconfig:"ADDRESS" validate:"omitempty,eth_addr"`
	Interval    time.Duration `envconfig:"INTERVAL" default:"2m" validate:"gt=0"`
	Contract    string        `envconfig:"CONTRACT" validate:"required_if=Enabled true,omitempty,eth_addr"`
	Topic       string        `envconfig:"TOPIC" validate:"required_if=Enabled true"`
	ExplorerURL string        `envconfig:"EXPLORER_URL" validate:"omitempty,url"`
	MaxRange    int64         `envconfig:"MAX_RANGE" default:"2000" validate:"gt=0"`
}

type News struct {
	Enabled  bool          `envconfig:"ENABLED" default:"false"`
	Address  string        `envconfig:"ADDRESS" validate:"omitempty,eth_addr"`
	Interval time.Duration `envconfig:"INTERVAL" default:"10m" validate:"gt=0"`
	FeedURL  string        `envconfig:"FEED_URL" validate:"required_if=Enabled true,omitempty,url"`
	PageSize int           `envconfig:"PAGE_SIZE" default:"20" validate:"gt=0"`
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading configuration: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
