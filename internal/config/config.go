package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
)

// Config is the service configuration. Values come from an optional YAML file
// (CONFIG_FILE) and are overridden by environment variables.
type Config struct {
	Port      string `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	StoreDriver string `yaml:"store_driver"`
	SQLitePath  string `yaml:"sqlite_path"`

	AWSRegion          string `yaml:"aws_region"`
	DynamoDBEndpoint   string `yaml:"dynamodb_endpoint"`
	AWSAccessKeyID     string `yaml:"aws_access_key_id"`
	AWSSecretAccessKey string `yaml:"aws_secret_access_key"`

	JWTSecret string `yaml:"jwt_secret"`

	SMTP SMTPConfig `yaml:"smtp"`

	DocumentsDir        string        `yaml:"documents_dir"`
	ExternalCallTimeout time.Duration `yaml:"external_call_timeout"`
	VaultEncryptionKey  string        `yaml:"vault_encryption_key"`
}

type SMTPConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Pass      string `yaml:"pass"`
	Secure    bool   `yaml:"secure"`
	FromName  string `yaml:"from_name"`
	FromEmail string `yaml:"from_email"`
	Mock      bool   `yaml:"mock"`
}

func Default() Config {
	return Config{
		Port:                "8080",
		LogLevel:            "info",
		LogFormat:           "json",
		StoreDriver:         StoreDynamoDB,
		SQLitePath:          "data/agency.db",
		AWSRegion:           "us-east-1",
		SMTP:                SMTPConfig{Port: 587, FromName: "BizTech Team"},
		DocumentsDir:        "uploads/proposals",
		ExternalCallTimeout: 15 * time.Second,
	}
}

// Load reads CONFIG_FILE (if set) over the defaults, then applies environment
// overrides.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	str := map[string]*string{
		"PORT":                  &c.Port,
		"LOG_LEVEL":             &c.LogLevel,
		"LOG_FORMAT":            &c.LogFormat,
		"STORE_DRIVER":          &c.StoreDriver,
		"SQLITE_PATH":           &c.SQLitePath,
		"AWS_REGION":            &c.AWSRegion,
		"DYNAMODB_ENDPOINT":     &c.DynamoDBEndpoint,
		"AWS_ACCESS_KEY_ID":     &c.AWSAccessKeyID,
		"AWS_SECRET_ACCESS_KEY": &c.AWSSecretAccessKey,
		"JWT_SECRET":            &c.JWTSecret,
		"SMTP_HOST":             &c.SMTP.Host,
		"SMTP_USER":             &c.SMTP.User,
		"SMTP_PASS":             &c.SMTP.Pass,
		"FROM_NAME":             &c.SMTP.FromName,
		"FROM_EMAIL":            &c.SMTP.FromEmail,
		"DOCUMENTS_DIR":         &c.DocumentsDir,
		"VAULT_ENCRYPTION_KEY":  &c.VaultEncryptionKey,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SMTP_PORT: %w", err)
		}
		c.SMTP.Port = port
	}
	bools := map[string]*bool{
		"SMTP_SECURE":               &c.SMTP.Secure,
		"NOTIFICATION_GATEWAY_MOCK": &c.SMTP.Mock,
	}
	for key, dst := range bools {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = b
		}
	}
	if v := os.Getenv("EXTERNAL_CALL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("EXTERNAL_CALL_TIMEOUT: %w", err)
		}
		c.ExternalCallTimeout = d
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.StoreDriver) {
	case StoreDynamoDB:
	case StoreSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.ExternalCallTimeout <= 0 {
		errs = append(errs, errors.New("EXTERNAL_CALL_TIMEOUT must be positive"))
	}
	if c.VaultEncryptionKey == "" {
		errs = append(errs, errors.New("VAULT_ENCRYPTION_KEY is required"))
	}
	if !c.SMTP.Mock && c.SMTP.Host == "" {
		errs = append(errs, errors.New("SMTP_HOST is required unless NOTIFICATION_GATEWAY_MOCK is set"))
	}
	return errors.Join(errs...)
}
