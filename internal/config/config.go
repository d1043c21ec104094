// Package config loads the service configuration.
//
// Values come from config.yaml (searched in ./config and the working
// directory), then TALENT_* environment variables, then any flags bound by
// the caller. Environment keys replace dots with underscores, so
// redis.address is TALENT_REDIS_ADDRESS.
package config

import (
	stderrors "errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "TALENT"

// Config is the full service configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Rarity  RarityConfig  `mapstructure:"rarity"`
	Schema  SchemaConfig  `mapstructure:"schema"`
	Session SessionConfig `mapstructure:"session"`
}

// ServerConfig configures the gRPC server
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	Verbose         bool          `mapstructure:"verbose"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// RedisConfig configures the talent and session stores. When disabled the
// stores are kept in memory.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0,max=15"`
}

// RarityConfig points at the remote rarity service; an empty base URL keeps
// rarity changes local
type RarityConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// SchemaConfig configures the validation enumerations
type SchemaConfig struct {
	Tiers      []string `mapstructure:"tiers" validate:"min=1,dive,required"`
	Resources  []string `mapstructure:"resources" validate:"min=1,dive,required"`
	ReportMode string   `mapstructure:"report_mode" validate:"oneof=card relatory"`
	Strict     bool     `mapstructure:"strict"`
}

// SessionConfig names the saved session slot
type SessionConfig struct {
	Name string        `mapstructure:"name" validate:"required"`
	TTL  time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

// NewViper returns a viper instance with defaults, config search paths and
// environment overrides set. paths replaces the default search paths.
func NewViper(paths ...string) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./config", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	defaults := schema.DefaultOptions()
	resources := make([]string, len(defaults.Resources))
	for i, r := range defaults.Resources {
		resources[i] = string(r)
	}

	v.SetDefault("server.port", 50051)
	v.SetDefault("server.verbose", false)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rarity.base_url", "")
	v.SetDefault("rarity.timeout", 10*time.Second)

	v.SetDefault("schema.tiers", defaults.Tiers)
	v.SetDefault("schema.resources", resources)
	v.SetDefault("schema.report_mode", string(defaults.ReportMode))
	v.SetDefault("schema.strict", false)

	v.SetDefault("session.name", "default")
	v.SetDefault("session.ttl", time.Duration(0))
}

// Load reads the config file if one exists, applies overrides and validates
// the result
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints and the rules that span fields
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !stderrors.As(err, &fieldErrs) {
			return errors.Wrap(err, "failed to validate config")
		}
		for _, fe := range fieldErrs {
			vb.Fieldf(fieldName(fe.Namespace()), "failed %s validation", fe.Tag())
		}
	}

	if c.Redis.Enabled && strings.TrimSpace(c.Redis.Address) == "" {
		vb.Field("Redis.Address", "is required when redis is enabled")
	}
	if c.Rarity.BaseURL != "" && c.Rarity.Timeout == 0 {
		vb.Field("Rarity.Timeout", "must be set when a base URL is configured")
	}

	return vb.Build()
}

// fieldName drops the root struct name from a validator namespace
func fieldName(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// SchemaOptions converts the schema section into schema options
func (c *Config) SchemaOptions() schema.Options {
	resources := make([]talents.ResourceType, len(c.Schema.Resources))
	for i, r := range c.Schema.Resources {
		resources[i] = talents.ResourceType(strings.ToLower(strings.TrimSpace(r)))
	}

	return schema.Options{
		Tiers:      append([]string{}, c.Schema.Tiers...),
		Resources:  resources,
		ReportMode: talents.ReportMode(c.Schema.ReportMode),
		Strict:     c.Schema.Strict,
	}
}
