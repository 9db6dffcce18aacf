// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Cache     CacheConfig     `toml:"cache"`
	TMDB      TMDBConfig      `toml:"tmdb"`
	OMDb      OMDbConfig      `toml:"omdb"`
	AI        AIConfig        `toml:"ai"`
	Search    SearchConfig    `toml:"search"`
	Scoring   ScoringConfig   `toml:"scoring"`
	Feedback  FeedbackConfig  `toml:"feedback"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

type ServerConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	LogLevel       string   `toml:"log_level"`
	LogFormat      string   `toml:"log_format"`
	CORSOrigins    []string `toml:"cors_origins"`
	RateLimitRPS   float64  `toml:"rate_limit_rps"`
	RateLimitBurst int      `toml:"rate_limit_burst"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type CacheConfig struct {
	Backend string        `toml:"backend"` // memory, redis, sqlite
	TTL     time.Duration `toml:"ttl"`
	Redis   *RedisConfig  `toml:"redis"`
}

type RedisConfig struct {
	URL string `toml:"url"`
}

type TMDBConfig struct {
	APIKey    string        `toml:"api_key"`
	BaseURL   string        `toml:"base_url"`
	Language  string        `toml:"language"`
	Regions   []string      `toml:"regions"`
	RateLimit float64       `toml:"rate_limit"`
	Timeout   time.Duration `toml:"timeout"`
}

type OMDbConfig struct {
	APIKey    string        `toml:"api_key"`
	BaseURL   string        `toml:"base_url"`
	RateLimit float64       `toml:"rate_limit"`
	Timeout   time.Duration `toml:"timeout"`
}

type AIConfig struct {
	Enabled   bool             `toml:"enabled"`
	Provider  string           `toml:"provider"`
	Timeout   time.Duration    `toml:"timeout"`
	Ollama    *OllamaConfig    `toml:"ollama"`
	Anthropic *AnthropicConfig `toml:"anthropic"`
}

type OllamaConfig struct {
	URL   string `toml:"url"`
	Model string `toml:"model"`
}

type AnthropicConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

type SearchConfig struct {
	MaxInFlight  int           `toml:"max_in_flight"`
	CallTimeout  time.Duration `toml:"call_timeout"`
	PersonWeight int           `toml:"person_weight"`
	MaxPersons   int           `toml:"max_persons"`
}

type ScoringConfig struct {
	Formula string `toml:"formula"`
}

type FeedbackConfig struct {
	Backend string       `toml:"backend"` // sqlite, mongo
	Mongo   *MongoConfig `toml:"mongo"`
}

type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

type TelemetryConfig struct {
	ServiceName  string `toml:"service_name"`
	OTLPEndpoint string `toml:"otlp_endpoint"`
}

// Load reads, parses and validates the configuration file.
// Unresolved environment variables and validation failures are reported
// together as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration without validating it.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8484
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Server.LogFormat == "" {
		c.Server.LogFormat = "text"
	}
	if c.Server.RateLimitBurst == 0 && c.Server.RateLimitRPS > 0 {
		c.Server.RateLimitBurst = int(c.Server.RateLimitRPS) * 2
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/reelsearch.db"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = time.Hour
	}
	if c.TMDB.Language == "" {
		c.TMDB.Language = "en-US"
	}
	if c.TMDB.RateLimit == 0 {
		c.TMDB.RateLimit = 40
	}
	if c.OMDb.RateLimit == 0 {
		c.OMDb.RateLimit = 10
	}
	if len(c.TMDB.Regions) == 0 {
		c.TMDB.Regions = []string{"US"}
	}
	if c.AI.Timeout == 0 {
		c.AI.Timeout = 5 * time.Second
	}
	if c.Search.MaxInFlight == 0 {
		c.Search.MaxInFlight = 8
	}
	if c.Search.CallTimeout == 0 {
		c.Search.CallTimeout = 8 * time.Second
	}
	if c.Search.PersonWeight == 0 {
		c.Search.PersonWeight = 3
	}
	if c.Search.MaxPersons == 0 {
		c.Search.MaxPersons = 3
	}
	if c.Feedback.Backend == "" {
		c.Feedback.Backend = "sqlite"
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "reelsearch"
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references in content.
// Unresolvable references are left in place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op, arg := groups[1], groups[2], groups[3]

		value, ok := os.LookupEnv(name)
		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}
