package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Calendar CalendarConfig  `yaml:"calendar"`
	Journal  JournalConfig   `yaml:"journal"`
	Services []ServiceConfig `yaml:"services"`
}

// ServerConfig holds settings shared by every HTTP listener.
type ServerConfig struct {
	RequestIPHeader        string  `yaml:"request_ip_header"`
	RateLimitPerSec        float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst         int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds        int     `yaml:"cache_ttl_seconds"`
	ShutdownTimeoutSeconds int     `yaml:"shutdown_timeout_seconds"`
}

// CalendarConfig controls the bookable date window.
type CalendarConfig struct {
	Days            int          `yaml:"days"`
	ExcludeWeekday  string       `yaml:"exclude_weekday"`
	ExcludedWeekday time.Weekday `yaml:"-"` // Ignored by YAML parser
}

// JournalConfig holds the configuration for the booking-event worker pool.
type JournalConfig struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// ServiceConfig describes one booking service instance (e.g. bus, flight).
type ServiceConfig struct {
	Name        string         `yaml:"name"`
	Port        int            `yaml:"port"`
	Prefix      string         `yaml:"prefix"`
	DigitsFirst bool           `yaml:"digits_first"`
	Seats       []string       `yaml:"seats"`
	Database    DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// DefaultSeats is the seat layout used when a service does not configure one.
var DefaultSeats = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 5
	}
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		cfg.Server.ShutdownTimeoutSeconds = 5
	}

	if cfg.Calendar.Days <= 0 {
		cfg.Calendar.Days = 7
	}
	if cfg.Calendar.ExcludeWeekday == "" {
		cfg.Calendar.ExcludeWeekday = "sunday"
	}
	wd, ok := weekdays[strings.ToLower(cfg.Calendar.ExcludeWeekday)]
	if !ok {
		return fmt.Errorf("unknown weekday %q in calendar.exclude_weekday", cfg.Calendar.ExcludeWeekday)
	}
	cfg.Calendar.ExcludedWeekday = wd

	if cfg.Journal.Workers <= 0 {
		cfg.Journal.Workers = 1
	}
	if cfg.Journal.QueueSize <= 0 {
		cfg.Journal.QueueSize = 64
	}

	if len(cfg.Services) == 0 {
		return fmt.Errorf("no services configured")
	}
	for i := range cfg.Services {
		svc := &cfg.Services[i]
		if svc.Name == "" {
			return fmt.Errorf("service %d has no name", i)
		}
		if svc.Prefix == "" {
			return fmt.Errorf("service %q has no booking-id prefix", svc.Name)
		}
		if svc.Port <= 0 {
			return fmt.Errorf("service %q has no port", svc.Name)
		}
		if len(svc.Seats) == 0 {
			svc.Seats = append([]string(nil), DefaultSeats...)
		}
		if svc.Database.Driver == "" {
			svc.Database.Driver = "sqlite"
		}
		if svc.Database.DSN == "" {
			svc.Database.DSN = svc.Name + ".db"
		}
	}
	return nil
}
