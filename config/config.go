package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/maastricht-university/word-der/transcript"
)

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type HTTP struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type Root struct {
	Markers []string `mapstructure:"markers"`
	Strict  bool     `mapstructure:"strict"`
	Output  string   `mapstructure:"output"`
	Report  string   `mapstructure:"report"`
	Log     Log      `mapstructure:"log"`
	HTTP    HTTP     `mapstructure:"http"`
}

// SetDefaults registers every key so environment overrides resolve on Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("markers", transcript.DefaultMarkers)
	v.SetDefault("strict", false)
	v.SetDefault("output", "")
	v.SetDefault("report", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("http.timeout", 60*time.Second)
}

// Load resolves configuration from explicit file, then CONFIG_ENV guesses, then
// WDER_* environment variables and flags already bound on v.
func Load(v *viper.Viper, explicit string) (*Root, error) {
	SetDefaults(v)
	v.SetEnvPrefix("WDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", explicit, err)
		}
	} else if p := guess(); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", p, err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func guess() string {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	for _, p := range []string{
		filepath.Join("config", env, "config.yaml"),
		"wder.yaml",
	} {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}

func (c *Root) Validate() error {
	var errs []error
	marked := false
	for _, m := range c.Markers {
		if strings.TrimSpace(m) != "" {
			marked = true
		}
	}
	if !marked {
		errs = append(errs, errors.New("markers must name at least one speaker marker"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of trace|debug|info|warn|error", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of text|json", c.Log.Format))
	}
	if c.HTTP.Timeout <= 0 {
		errs = append(errs, errors.New("http.timeout must be positive"))
	}
	return errors.Join(errs...)
}
