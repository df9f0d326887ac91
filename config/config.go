package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port" validate:"required"`
}

// ClientConfig is the fixed client signature sent on every outbound call.
type ClientConfig struct {
	UserAgent      string `yaml:"user_agent" validate:"required"`
	AcceptLanguage string `yaml:"accept_language" validate:"required"`
}

// RailConfig points at the scrape target.
type RailConfig struct {
	BaseURL             string `yaml:"base_url" validate:"required,url"`
	SearchTimeoutStr    string `yaml:"search_timeout"`
	TimetableTimeoutStr string `yaml:"timetable_timeout"`

	SearchTimeout    time.Duration `yaml:"-"`
	TimetableTimeout time.Duration `yaml:"-"`
}

// GeoConfig points at the geocoding and spatial-query services.
type GeoConfig struct {
	NominatimURL       string `yaml:"nominatim_url" validate:"required,url"`
	OverpassURL        string `yaml:"overpass_url" validate:"required,url"`
	GeocodeTimeoutStr  string `yaml:"geocode_timeout"`
	OverpassTimeoutStr string `yaml:"overpass_timeout"`
	CacheTTLStr        string `yaml:"cache_ttl"`
	DefaultRadius      int    `yaml:"default_radius" validate:"gt=0"`

	GeocodeTimeout  time.Duration `yaml:"-"`
	OverpassTimeout time.Duration `yaml:"-"`
	CacheTTL        time.Duration `yaml:"-"`
}

// GeminiConfig configures the generative-text pass-through. The API key is
// never read from the config file; it comes from the environment
// (GEMINI_API_KEY, GENAI_API_KEY or GOOGLE_API_KEY).
type GeminiConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
	Model   string `yaml:"model" validate:"required"`
	APIKey  string `yaml:"-"`
}

type Config struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Client ClientConfig `yaml:"client" validate:"required"`
	Rail   RailConfig   `yaml:"rail" validate:"required"`
	Geo    GeoConfig    `yaml:"geo" validate:"required"`
	Gemini GeminiConfig `yaml:"gemini" validate:"required"`
}

var AppConfig Config

// LoadConfig reads and validates the YAML config, overlays environment
// values and parses duration fields.
func LoadConfig(configPath string) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if p := os.Getenv("PORT"); p != "" {
		cfg.Server.Port = p
	}
	if m := os.Getenv("GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	cfg.Gemini.APIKey = firstEnv("GEMINI_API_KEY", "GENAI_API_KEY", "GOOGLE_API_KEY")

	if err := parseDurations(&cfg); err != nil {
		return err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	AppConfig = cfg
	return nil
}

func parseDurations(cfg *Config) error {
	var err error
	if cfg.Rail.SearchTimeout, err = durationOr(cfg.Rail.SearchTimeoutStr, 12*time.Second); err != nil {
		return fmt.Errorf("rail.search_timeout: %w", err)
	}
	if cfg.Rail.TimetableTimeout, err = durationOr(cfg.Rail.TimetableTimeoutStr, 15*time.Second); err != nil {
		return fmt.Errorf("rail.timetable_timeout: %w", err)
	}
	if cfg.Geo.GeocodeTimeout, err = durationOr(cfg.Geo.GeocodeTimeoutStr, 12*time.Second); err != nil {
		return fmt.Errorf("geo.geocode_timeout: %w", err)
	}
	if cfg.Geo.OverpassTimeout, err = durationOr(cfg.Geo.OverpassTimeoutStr, 40*time.Second); err != nil {
		return fmt.Errorf("geo.overpass_timeout: %w", err)
	}
	if cfg.Geo.CacheTTL, err = durationOr(cfg.Geo.CacheTTLStr, 6*time.Hour); err != nil {
		return fmt.Errorf("geo.cache_ttl: %w", err)
	}
	return nil
}

func durationOr(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	return time.ParseDuration(s)
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
