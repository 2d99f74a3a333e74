package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Content    ContentConfig    `mapstructure:"content" validate:"required"`
	Background BackgroundConfig `mapstructure:"background" validate:"required"`
	Contact    ContactConfig    `mapstructure:"contact"`
	Site       SiteConfig       `mapstructure:"site"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	StaticDir       string        `mapstructure:"static_dir" validate:"required"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format" validate:"required,oneof=json console"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// ContentConfig says where the content files live
type ContentConfig struct {
	DataPath string        `mapstructure:"data_path" validate:"required"`
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce" validate:"gte=10ms"`
}

// BackgroundConfig sizes the animated background
type BackgroundConfig struct {
	Width     int    `mapstructure:"width" validate:"gt=0,ltefield=MaxWidth"`
	Height    int    `mapstructure:"height" validate:"gt=0,ltefield=MaxHeight"`
	MaxWidth  int    `mapstructure:"max_width" validate:"gt=0"`
	MaxHeight int    `mapstructure:"max_height" validate:"gt=0"`
	FPS       int    `mapstructure:"fps" validate:"gt=0,lte=240"`
	Stars     int    `mapstructure:"stars" validate:"gte=0,lte=5000"`
	Nebulae   int    `mapstructure:"nebulae" validate:"gte=0,lte=500"`
	Seed      uint64 `mapstructure:"seed"`
	MaxFrames int    `mapstructure:"max_frames" validate:"gt=0"`
}

// ContactConfig tunes the simulated contact-form submission
type ContactConfig struct {
	SubmitDelay time.Duration `mapstructure:"submit_delay" validate:"gte=0"`
}

// SiteConfig holds presentation flags handed to the page shell
type SiteConfig struct {
	Theme string `mapstructure:"theme" validate:"oneof=dark light"`
}

var validate = validator.New()

// Load reads configuration from defaults, an optional config file and the
// environment, in increasing order of precedence. An empty path looks for
// ./config.yaml and carries on without it when absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// SERVER_ADDR is kept from older deployments
	if err := v.BindEnv("server.addr", "PORTFOLIO_SERVER_ADDR", "SERVER_ADDR"); err != nil {
		return nil, fmt.Errorf("binding server address env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.static_dir", "static")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("content.data_path", "data")
	v.SetDefault("content.watch", true)
	v.SetDefault("content.debounce", 250*time.Millisecond)

	v.SetDefault("background.width", 1280)
	v.SetDefault("background.height", 720)
	v.SetDefault("background.max_width", 3840)
	v.SetDefault("background.max_height", 2160)
	v.SetDefault("background.fps", 60)
	v.SetDefault("background.stars", 400)
	v.SetDefault("background.nebulae", 30)
	v.SetDefault("background.seed", 0)
	v.SetDefault("background.max_frames", 600)

	v.SetDefault("contact.submit_delay", 1500*time.Millisecond)

	v.SetDefault("site.theme", "dark")
}
