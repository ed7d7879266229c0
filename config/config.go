package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"

	"github.com/haguru/credkeeper/internal/credvalidator"
	"github.com/haguru/credkeeper/internal/hasher"
)

const (
	CONFIG_PATH = "./res/config.yaml"

	// ConfigPathEnv overrides CONFIG_PATH.
	ConfigPathEnv = "CREDKEEPER_CONFIG"
	// EnvPrefix marks environment variables that override config keys.
	// Nested keys are separated by a double underscore:
	// CREDKEEPER_CREDENTIALS__HASHER__ITERATIONS=200000
	EnvPrefix           = "CREDKEEPER_"
	envNestingSeparator = "__"

	DatabaseTypeMongo    = "mongo"
	DatabaseTypePostgres = "postgres"
	DatabaseTypeMemory   = "memory"

	DefaultShutdownTimeout = 10 * time.Second
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName     string        `yaml:"service_name" validate:"required"`
	LogLevel        string        `yaml:"loglevel" validate:"required"`
	Host            string        `yaml:"host" validate:"required"`
	Port            string        `yaml:"port" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Credentials     Credentials   `yaml:"credentials"`
	Database        Database      `yaml:"database" validate:"required"`
}

// Credentials holds the hashing parameters and the credential policy.
type Credentials struct {
	Hasher hasher.Config        `yaml:"hasher"`
	Policy credvalidator.Policy `yaml:"policy"`
	// DisableTimingEqualization skips the decoy derivation for unknown users.
	DisableTimingEqualization bool `yaml:"disable_timing_equalization"`
}

type Database struct {
	Type string `yaml:"type" validate:"required,oneof=mongo postgres memory"`
	// For MongoDB
	MongoDB *MongoDBConfig `yaml:"mongodb_config" validate:"required_if=Type mongo,omitempty"`
	// For PostgreSQL
	Postgres *PostgresConfig `yaml:"postgres_config" validate:"required_if=Type postgres,omitempty"`
}

// MongoDBConfig holds the MongoDB connection settings.
type MongoDBConfig struct {
	DSN              string             `yaml:"dsn" validate:"required"`
	Collection       string             `yaml:"collection" validate:"required"`
	Timeout          time.Duration      `yaml:"timeout"`
	Options          MongoServerOptions `yaml:"mongo_server_options"`
	ValidCollections []string           `yaml:"valid_collections" validate:"required"`
	ValidFields      []string           `yaml:"valid_fields" validate:"required"`
}

// PostgresConfig holds the PostgreSQL connection settings.
type PostgresConfig struct {
	DSN     string                `yaml:"dsn" validate:"required"`
	Table   string                `yaml:"table" validate:"required"`
	Options PostgresServerOptions `yaml:"postgres_server_options"`
}

type MongoServerOptions struct {
	APIVersion           string `yaml:"api_version"`
	SetStrict            bool   `yaml:"set_strict"`
	SetDeprecationErrors bool   `yaml:"set_deprecation_errors"`
}

type PostgresServerOptions struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// It unmarshals the YAML content into a ServiceConfig struct and returns it.
// If there is an error reading the file or unmarshaling the content, it returns an error.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfig reads the file, applies environment overrides and defaults, and
// validates the result.
func LoadConfig(configPath string) (*ServiceConfig, error) {
	cfg, err := ReadLocalConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	if err := ApplyEnvOverrides(cfg, os.Environ()); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolveConfigPath returns the path from ConfigPathEnv, or CONFIG_PATH.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(ConfigPathEnv)); p != "" {
		return p
	}
	return CONFIG_PATH
}

// ApplyDefaults fills unset hashing, policy and server values.
func (c *ServiceConfig) ApplyDefaults() {
	c.Credentials.Hasher = c.Credentials.Hasher.WithDefaults()
	c.Credentials.Policy = c.Credentials.Policy.WithDefaults()
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// Validate checks the struct tags of the whole configuration.
func (c *ServiceConfig) Validate() error {
	validator := structValidator.New()
	if err := validator.Struct(c); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// ApplyEnvOverrides decodes EnvPrefix variables from environ onto cfg. Values
// are weakly typed, so "200000" fills an int and "30s" a time.Duration.
func ApplyEnvOverrides(cfg *ServiceConfig, environ []string) error {
	overrides := map[string]any{}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		path := strings.Split(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), envNestingSeparator)
		setNested(overrides, path, value)
	}
	if len(overrides) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		Result:           cfg,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return err
	}

	return decoder.Decode(overrides)
}

func setNested(m map[string]any, path []string, value string) {
	for i, key := range path {
		if key == "" {
			return
		}
		if i == len(path)-1 {
			m[key] = value
			return
		}
		next, ok := m[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[key] = next
		}
		m = next
	}
}

func BuildServerAPIOptions(cfg MongoServerOptions) *options.ServerAPIOptions {
	opts := options.ServerAPI(options.ServerAPIVersion(cfg.APIVersion))
	opts.SetStrict(cfg.SetStrict)
	opts.SetDeprecationErrors(cfg.SetDeprecationErrors)

	return opts
}

func ListToMap(list []string) map[string]bool {
	result := make(map[string]bool)
	for _, item := range list {
		result[item] = true
	}
	return result
}
