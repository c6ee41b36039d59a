package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
	DriverRedis    = "redis"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Database DatabaseConfig
	S3       S3Config
	Redis    RedisConfig
	Notes    NotesConfig
	Log      LogConfig
}

type AppConfig struct {
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type StorageConfig struct {
	Driver      string        `envconfig:"STORAGE_DRIVER" default:"file"`
	DataDir     string        `envconfig:"STORAGE_DATA_DIR" default:"."`
	ContactsKey string        `envconfig:"STORAGE_CONTACTS_KEY" default:"addressbook.json"`
	NotesKey    string        `envconfig:"STORAGE_NOTES_KEY"`
	Timeout     time.Duration `envconfig:"STORAGE_TIMEOUT" default:"5s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET"`
	Prefix          string `envconfig:"S3_PREFIX"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
}

type RedisConfig struct {
	Host      string `envconfig:"REDIS_HOST" default:"localhost"`
	Port      int    `envconfig:"REDIS_PORT" default:"6379"`
	Password  string `envconfig:"REDIS_PASSWORD" default:""`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"assistant:"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type NotesConfig struct {
	IDStrategy string `envconfig:"NOTES_ID_STRATEGY" default:"sequence"`
	SearchMode string `envconfig:"NOTES_SEARCH_MODE" default:"title_content_tags"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
	Output string `envconfig:"LOG_OUTPUT" default:"stderr"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings the selected storage driver depends on.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case DriverFile:
		if c.Storage.DataDir == "" {
			errs = append(errs, errors.New("STORAGE_DATA_DIR is required for the file driver"))
		}
	case DriverPostgres:
		if c.Database.User == "" || c.Database.Name == "" {
			errs = append(errs, errors.New("DB_USER and DB_NAME are required for the postgres driver"))
		}
	case DriverS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for the s3 driver"))
		}
		if c.S3.AccessKeyID == "" || c.S3.SecretAccessKey == "" {
			errs = append(errs, errors.New("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required for the s3 driver"))
		}
	case DriverRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}

	if c.Storage.ContactsKey == "" {
		errs = append(errs, errors.New("STORAGE_CONTACTS_KEY must not be empty"))
	}
	if c.Storage.Timeout <= 0 {
		errs = append(errs, errors.New("STORAGE_TIMEOUT must be positive"))
	}

	switch c.Notes.IDStrategy {
	case "sequence", "uuid":
	default:
		errs = append(errs, fmt.Errorf("unknown NOTES_ID_STRATEGY %q", c.Notes.IDStrategy))
	}
	switch c.Notes.SearchMode {
	case "title_content", "title_content_tags", "ranked":
	default:
		errs = append(errs, fmt.Errorf("unknown NOTES_SEARCH_MODE %q", c.Notes.SearchMode))
	}

	return errors.Join(errs...)
}
