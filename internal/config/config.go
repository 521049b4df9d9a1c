package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL   string `yaml:"base_url"`
		APIKey    string `yaml:"api_key"`
		StartYear int    `yaml:"start_year"`
		Series    struct {
			HeadlineNSA string `yaml:"headline_nsa"`
			HeadlineSA  string `yaml:"headline_sa"`
			CoreSA      string `yaml:"core_sa"`
		} `yaml:"series"`
	} `yaml:"data_source"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("BLS_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BLS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("START_YEAR"); v != "" {
		var year int
		if _, err := fmt.Sscanf(v, "%d", &year); err == nil {
			cfg.DataSource.StartYear = year
		}
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://api.bls.gov/publicAPI/v2"
	}
	if cfg.DataSource.StartYear == 0 {
		cfg.DataSource.StartYear = time.Now().Year() - 2
	}
	if cfg.DataSource.Series.HeadlineNSA == "" {
		cfg.DataSource.Series.HeadlineNSA = "CUUR0000SA0"
	}
	if cfg.DataSource.Series.HeadlineSA == "" {
		cfg.DataSource.Series.HeadlineSA = "CUSR0000SA0"
	}
	if cfg.DataSource.Series.CoreSA == "" {
		cfg.DataSource.Series.CoreSA = "CUSR0000SA0L1E"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 14 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/inflation_pulse.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required")
	}
	if c.DataSource.StartYear < 1913 || c.DataSource.StartYear > time.Now().Year() {
		return fmt.Errorf("data_source.start_year out of range: %d", c.DataSource.StartYear)
	}
	if c.DataSource.Series.HeadlineNSA == "" || c.DataSource.Series.HeadlineSA == "" || c.DataSource.Series.CoreSA == "" {
		return fmt.Errorf("all three data_source.series ids are required")
	}
	return nil
}
