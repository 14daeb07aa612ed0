// Package config loads the server configuration from an optional YAML file
// with environment variable overrides, so a bare FABRICVIEW_DATABASE_URL is
// enough for local runs while deployments ship a full file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr    string `yaml:"http_addr"`
	LogLevel    string `yaml:"log_level"`
	DatabaseURL string `yaml:"database_url"`

	Sync       Sync       `yaml:"sync"`
	Enrichment Enrichment `yaml:"enrichment"`
}

type Sync struct {
	Interval Duration `yaml:"interval"`
}

type Enrichment struct {
	ReverseDNS    bool     `yaml:"reverse_dns"`
	ResolverAddr  string   `yaml:"resolver_addr"`
	SNMP          bool     `yaml:"snmp"`
	SNMPCommunity string   `yaml:"snmp_community"`
	SNMPPort      uint16   `yaml:"snmp_port"`
	SNMPTimeout   Duration `yaml:"snmp_timeout"`
}

// Duration accepts Go duration strings ("30s", "2m") in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

func defaults() Config {
	return Config{
		HTTPAddr: ":8081",
		LogLevel: "info",
		Sync: Sync{
			Interval: Duration(30 * time.Second),
		},
		Enrichment: Enrichment{
			SNMPCommunity: "public",
			SNMPPort:      161,
			SNMPTimeout:   Duration(2 * time.Second),
		},
	}
}

// Load reads the file at path when non-empty, then applies environment
// overrides on top. A missing file at an explicitly given path is an error;
// an empty path means env-only configuration.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FABRICVIEW_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("FABRICVIEW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FABRICVIEW_DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("FABRICVIEW_SYNC_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Sync.Interval = Duration(d)
		}
	}
	if v := os.Getenv("FABRICVIEW_ENRICH_REVERSE_DNS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enrichment.ReverseDNS = b
		}
	}
	if v := os.Getenv("FABRICVIEW_ENRICH_SNMP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enrichment.SNMP = b
		}
	}
	if v := os.Getenv("FABRICVIEW_RESOLVER_ADDR"); v != "" {
		cfg.Enrichment.ResolverAddr = v
	}
	if v := os.Getenv("FABRICVIEW_SNMP_COMMUNITY"); v != "" {
		cfg.Enrichment.SNMPCommunity = v
	}
}
