// Package config loads the command line tool's settings from a YAML file,
// the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tsawler/wikitable/internal/logging"
	"github.com/tsawler/wikitable/records"
)

// EnvPrefix prefixes environment overrides, e.g. WIKITABLE_LOG_LEVEL.
const EnvPrefix = "WIKITABLE"

// Config holds all settings.
type Config struct {
	Log logging.Config `mapstructure:"log"`

	// Table is the schema of the table being converted. With no columns
	// the schema is inferred from the document.
	Table records.Schema `mapstructure:"table" validate:"-"`

	XLSX XLSXConfig `mapstructure:"xlsx"`
}

// XLSXConfig controls spreadsheet input and output.
type XLSXConfig struct {
	Sheet string `mapstructure:"sheet"`
}

var validate = validator.New()

// Validate checks the logging settings and, when columns are configured,
// the table schema.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if len(c.Table.Columns) > 0 {
		if err := c.Table.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the configuration. A .env file in the working directory is
// loaded into the environment first, if present. path may be empty, in
// which case only defaults and environment variables apply.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{Log: logging.DefaultConfig()}
}

func setDefaults(v *viper.Viper) {
	def := logging.DefaultConfig()
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.format", def.Format)
	v.SetDefault("log.file", def.File)
	v.SetDefault("log.max_size_mb", def.MaxSizeMB)
	v.SetDefault("log.max_backups", def.MaxBackups)
	v.SetDefault("log.max_age_days", def.MaxAgeDays)
	v.SetDefault("table.date_layout", "")
	v.SetDefault("xlsx.sheet", "")
}
