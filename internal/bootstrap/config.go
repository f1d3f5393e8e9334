package bootstrap

import (
    "errors"
    "fmt"
    "os"
    "time"

    "github.com/spf13/viper"

    "github.com/Thomas-X/Checkers/internal/domain"
)

type Config struct {
    BoardWidth     int           `mapstructure:"BOARD_WIDTH"`
    BoardHeight    int           `mapstructure:"BOARD_HEIGHT"`
    RetryDelay     time.Duration `mapstructure:"RETRY_DELAY"`
    HTTPAddr       string        `mapstructure:"HTTP_ADDR"`
    LogLevel       string        `mapstructure:"LOG_LEVEL"`
    LogDevelopment bool          `mapstructure:"LOG_DEVELOPMENT"`
}

var defaults = map[string]any{
    "BOARD_WIDTH":     10,
    "BOARD_HEIGHT":    10,
    "RETRY_DELAY":     2 * time.Second,
    "HTTP_ADDR":       ":8080",
    "LOG_LEVEL":       "info",
    "LOG_DEVELOPMENT": false,
}

// Setup loads configuration from defaults, the optional file at cfgPath and
// CHECKERS_* environment variables, in increasing priority.
func Setup(cfgPath string) (*Config, error) {
    v := viper.New()
    for k, val := range defaults {
        v.SetDefault(k, val)
    }
    v.SetEnvPrefix("CHECKERS")
    v.AutomaticEnv()

    if cfgPath != "" {
        v.SetConfigFile(cfgPath)
        if err := v.ReadInConfig(); err != nil {
            if !errors.Is(err, os.ErrNotExist) {
                return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
            }
        }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, err
    }
    if err := cfg.Validate(); err != nil {
        return nil, err
    }
    return &cfg, nil
}

// Validate rejects values the game cannot start with.
func (c *Config) Validate() error {
    if c.BoardWidth < domain.MinBoardSize {
        return &domain.ConfigError{Field: "width", Value: c.BoardWidth}
    }
    if c.BoardHeight < domain.MinBoardSize {
        return &domain.ConfigError{Field: "height", Value: c.BoardHeight}
    }
    if c.RetryDelay <= 0 {
        return fmt.Errorf("retry delay must be positive, got %s", c.RetryDelay)
    }
    return nil
}
