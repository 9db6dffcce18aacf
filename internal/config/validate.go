package config

import (
	"fmt"

	"github.com/expr-lang/expr"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true, "": true,
}

var validCacheBackends = map[string]bool{
	"memory": true, "redis": true, "sqlite": true, "": true,
}

var validFeedbackBackends = map[string]bool{
	"sqlite": true, "mongo": true, "": true,
}

var validAIProviders = map[string]bool{
	"ollama": true, "anthropic": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if !validLogFormats[c.Server.LogFormat] {
		errs = append(errs, fmt.Sprintf("server.log_format: must be text or json; got %q", c.Server.LogFormat))
	}
	if c.Server.RateLimitRPS < 0 {
		errs = append(errs, "server.rate_limit_rps: must not be negative")
	}

	// Catalog is the only source of candidates.
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}

	if !validCacheBackends[c.Cache.Backend] {
		errs = append(errs, fmt.Sprintf("cache.backend: must be one of memory, redis, sqlite; got %q", c.Cache.Backend))
	}
	if c.Cache.Backend == "redis" && (c.Cache.Redis == nil || c.Cache.Redis.URL == "") {
		errs = append(errs, "cache.redis.url: required when cache.backend is redis")
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, "cache.ttl: must not be negative")
	}

	if !validFeedbackBackends[c.Feedback.Backend] {
		errs = append(errs, fmt.Sprintf("feedback.backend: must be sqlite or mongo; got %q", c.Feedback.Backend))
	}
	if c.Feedback.Backend == "mongo" && (c.Feedback.Mongo == nil || c.Feedback.Mongo.URI == "") {
		errs = append(errs, "feedback.mongo.uri: required when feedback.backend is mongo")
	}

	if c.Search.MaxInFlight < 0 {
		errs = append(errs, "search.max_in_flight: must not be negative")
	}
	if c.Search.PersonWeight != 0 && (c.Search.PersonWeight < 2 || c.Search.PersonWeight > 5) {
		errs = append(errs, fmt.Sprintf("search.person_weight: must be between 2 and 5, got %d", c.Search.PersonWeight))
	}

	if c.AI.Enabled {
		if !validAIProviders[c.AI.Provider] {
			errs = append(errs, fmt.Sprintf("ai.provider: must be one of ollama, anthropic; got %q", c.AI.Provider))
		}
		if c.AI.Provider == "ollama" && (c.AI.Ollama == nil || c.AI.Ollama.URL == "") {
			errs = append(errs, "ai.ollama.url: required when ai.provider is ollama")
		}
		if c.AI.Provider == "anthropic" && (c.AI.Anthropic == nil || c.AI.Anthropic.APIKey == "") {
			errs = append(errs, "ai.anthropic.api_key: required when ai.provider is anthropic")
		}
	}

	if c.Scoring.Formula != "" {
		if _, err := expr.Compile(c.Scoring.Formula, expr.AllowUndefinedVariables()); err != nil {
			errs = append(errs, fmt.Sprintf("scoring.formula: %v", err))
		}
	}

	return errs
}
