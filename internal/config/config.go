package config

import (
	"errors"
	"fmt"
	"os"

	errorsUtils "github.com/Egor213/LogViewer/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		HTTP       `yaml:"http"`
		Prometheus `yaml:"prometheus"`
		Viewer     `yaml:"viewer"`
		Storage    `yaml:"storage"`
		PG         `yaml:"postgres"`
		Kafka      `yaml:"kafka"`
		Session    `yaml:"session"`
		Guards     `yaml:"guards"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	}

	HTTP struct {
		Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	}

	Prometheus struct {
		Port string `yaml:"port" env:"PROMETHEUS_PORT" env-default:"9090"`
	}

	Viewer struct {
		PerPage int      `yaml:"per_page" env:"VIEWER_PER_PAGE" env-default:"20"`
		Prefix  string   `yaml:"prefix" env:"VIEWER_PREFIX" env-default:"/logviewer"`
		Filters []string `yaml:"filters" env:"VIEWER_FILTERS" env-separator:","`
	}

	Storage struct {
		Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
		Dir        string `yaml:"dir" env:"STORAGE_DIR" env-default:"storage/logs"`
		FilePrefix string `yaml:"file_prefix" env:"STORAGE_FILE_PREFIX" env-default:"laravel-"`
		FileSuffix string `yaml:"file_suffix" env:"STORAGE_FILE_SUFFIX" env-default:".log"`
		Watch      bool   `yaml:"watch" env:"STORAGE_WATCH" env-default:"true"`
	}

	PG struct {
		MaxPoolSize int    `yaml:"max_pool_size" env:"MAX_POOL_SIZE" env-default:"2"`
		URL         string `yaml:"url" env:"PG_URL"`
	}

	Kafka struct {
		Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"logviewer.deletions"`
	}

	Session struct {
		Secret string `yaml:"secret" env:"SESSION_SECRET"`
		Secure bool   `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
		MaxAge int    `yaml:"max_age" env:"SESSION_MAX_AGE" env-default:"86400"`
	}

	Guards struct {
		BasicUser     string  `yaml:"basic_user" env:"GUARD_BASIC_USER"`
		BasicPassword string  `yaml:"basic_password" env:"GUARD_BASIC_PASSWORD"`
		ThrottleRPS   float64 `yaml:"throttle_rps" env:"GUARD_THROTTLE_RPS" env-default:"10"`
	}
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"

	ENV_PATH            = "infra/.env"
	DEFAULT_CONFIG_PATH = "infra/config.yaml"
)

var (
	ErrUnknownDriver   = errors.New("unknown storage driver")
	ErrMissingPGURL    = errors.New("postgres url is required for the postgres driver")
	ErrMissingSecret   = errors.New("session secret is required")
	ErrMissingBrokers  = errors.New("kafka brokers are required when kafka is enabled")
	ErrInvalidPageSize = errors.New("per_page must be positive")
	ErrInvalidThrottle = errors.New("throttle_rps must be positive")
)

func New() (*Config, error) {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.WithField("path", ENV_PATH).Debug("No .env file loaded")
	}

	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile:
	case DriverPostgres:
		if c.PG.URL == "" {
			return ErrMissingPGURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}

	if c.Viewer.PerPage <= 0 {
		return ErrInvalidPageSize
	}
	if c.Session.Secret == "" {
		return ErrMissingSecret
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return ErrMissingBrokers
	}
	if c.Guards.ThrottleRPS <= 0 {
		return ErrInvalidThrottle
	}
	return nil
}
