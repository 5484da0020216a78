package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Resolver names.
const (
	ResolverDNS    = "dns"
	ResolverSystem = "system"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	DNS     DNSConfig     `mapstructure:"dns"`
	Output  OutputConfig  `mapstructure:"output"`
	Suggest bool          `mapstructure:"suggest"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DNSConfig holds MX lookup configuration.
type DNSConfig struct {
	Resolver    string        `mapstructure:"resolver"`
	Nameservers []string      `mapstructure:"nameservers"`
	ResolvConf  string        `mapstructure:"resolv_conf"`
	Timeout     time.Duration `mapstructure:"timeout"`
	TCP         bool          `mapstructure:"tcp"`
	Proxy       string        `mapstructure:"proxy"`
}

// OutputConfig holds report output configuration.
type OutputConfig struct {
	Color string `mapstructure:"color"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("dns.resolver", ResolverDNS)
	v.SetDefault("dns.nameservers", []string{})
	v.SetDefault("dns.resolv_conf", "/etc/resolv.conf")
	v.SetDefault("dns.timeout", 5*time.Second)
	v.SetDefault("dns.tcp", false)
	v.SetDefault("dns.proxy", "")
	v.SetDefault("output.color", ColorAuto)
	v.SetDefault("suggest", true)
}

// Load reads the optional configuration file "checkmx.yaml".
// With an empty configPath it is looked for in the working directory and
// then in $HOME/.config/checkmx. A missing file is not an error.
// Environment variables with prefix CHECKMX_ override file values.
// For example, CHECKMX_DNS_TIMEOUT overrides dns.timeout.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("checkmx")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "checkmx"))
		}
	}

	v.SetEnvPrefix("CHECKMX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DNS.Resolver {
	case ResolverDNS, ResolverSystem:
	default:
		return fmt.Errorf("dns.resolver: unknown resolver %q", c.DNS.Resolver)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color: unknown mode %q", c.Output.Color)
	}

	if c.DNS.Timeout <= 0 {
		return fmt.Errorf("dns.timeout: must be positive, got %s", c.DNS.Timeout)
	}
	return nil
}
