package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables overriding file settings,
// e.g. MOVIE_CATALOG_DATABASE_DSN overrides database.dsn
const EnvPrefix = "MOVIE_CATALOG"

// WebConfig holds the settings of the movie catalog web application
type WebConfig struct {
	Port           string           `mapstructure:"port" validate:"required,numeric"`
	TemplateDir    string           `mapstructure:"template_dir"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	Database       DatabaseSettings `mapstructure:"database"`
	Logger         LoggerSettings   `mapstructure:"logger"`
}

// Validate checks the web settings and every nested section
func (c *WebConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for WebConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("template_dir", "")
	v.SetDefault("allowed_origins", []string{"*"})

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "movies.db")
	v.SetDefault("database.name", "")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
}

// InitializeWebConfig loads the configuration file at path. A missing file is
// not an error: defaults and environment overrides are used instead.
func InitializeWebConfig(path string) (*WebConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg WebConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
