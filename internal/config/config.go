// Package config loads CLI configuration from a YAML file, PLAYFAB_* environment variables and flags.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"fabforge/credstore"
	"fabforge/playfab"
)

const EnvPrefix = "PLAYFAB"

type Config struct {
	TitleID     string        `mapstructure:"title_id" yaml:"title_id"`
	SecretKey   string        `mapstructure:"secret_key" yaml:"secret_key,omitempty"`
	EndpointURL string        `mapstructure:"endpoint_url" yaml:"endpoint_url,omitempty"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`

	Credentials Credentials `mapstructure:"credentials" yaml:"credentials"`
	Log         Log         `mapstructure:"log" yaml:"log"`
}

type Credentials struct {
	Store     string        `mapstructure:"store" yaml:"store" validate:"oneof=file redis memory"`
	Key       string        `mapstructure:"key" yaml:"key" validate:"required"`
	Dir       string        `mapstructure:"dir" yaml:"dir,omitempty" validate:"required_if=Store file"`
	RedisAddr string        `mapstructure:"redis_addr" yaml:"redis_addr,omitempty" validate:"required_if=Store redis"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl,omitempty"`
}

type Log struct {
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file" yaml:"file,omitempty"`
	JSON  bool   `mapstructure:"json" yaml:"json"`
}

// FlagKeys maps command line flag names onto config keys.
var FlagKeys = map[string]string{
	"title-id":     "title_id",
	"secret-key":   "secret_key",
	"endpoint-url": "endpoint_url",
	"timeout":      "timeout",
	"store":        "credentials.store",
	"profile":      "credentials.key",
	"log-level":    "log.level",
	"log-file":     "log.file",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func defaultCredentialDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "fabforge", "credentials")
}

// Load reads path (optional), then PLAYFAB_* variables, then any changed flags in fs.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("title_id", "")
	v.SetDefault("secret_key", "")
	v.SetDefault("endpoint_url", "")
	v.SetDefault("timeout", "30s")
	v.SetDefault("credentials.store", "file")
	v.SetDefault("credentials.key", "default")
	v.SetDefault("credentials.dir", defaultCredentialDir())
	v.SetDefault("credentials.redis_addr", "")
	v.SetDefault("credentials.ttl", "0s")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)

	// PLAYFAB_TITLE_ID, PLAYFAB_CREDENTIALS_STORE, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WithMessagef(err, "read config %s", path)
		}
	}

	if fs != nil {
		for name, key := range FlagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.WithMessagef(err, "bind flag --%s", name)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WithMessage(err, "decode config")
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.WithMessage(err, "invalid config")
	}
	return &cfg, nil
}

// Settings converts the config into client settings.
func (c *Config) Settings(logger *zap.Logger) playfab.Settings {
	return playfab.Settings{
		TitleID:            c.TitleID,
		DeveloperSecretKey: c.SecretKey,
		EndpointURL:        c.EndpointURL,
		RequestTimeout:     c.Timeout,
		Logger:             logger,
	}
}

// OpenStore opens the configured credential store. The returned func releases it.
func (c *Config) OpenStore() (credstore.Store, func() error, error) {
	noop := func() error { return nil }
	switch c.Credentials.Store {
	case "memory":
		return credstore.NewMemory(), noop, nil
	case "redis":
		cli := redis.NewClient(&redis.Options{Addr: c.Credentials.RedisAddr})
		return credstore.NewRedis(cli, credstore.WithTTL(c.Credentials.TTL)), cli.Close, nil
	case "file", "":
		return credstore.NewFile(c.Credentials.Dir), noop, nil
	default:
		return nil, nil, errors.Errorf("unknown credential store %q", c.Credentials.Store)
	}
}
