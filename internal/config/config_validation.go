package config

import "time"

// Fallback values applied to fields that no configuration source populated.
const (
	defaultHTTPAddress    = "0.0.0.0:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenDuration  = time.Hour
	defaultCacheTTL       = 60 * time.Second

	defaultRateLimitAttempts = 5
	defaultRateLimitWindow   = 450 * time.Second
	defaultRateLimitJail     = 450 * time.Second
)

// applyDefaults fills in fallback values for the fields that every
// deployment can reasonably run with out of the box. Secrets and connection
// strings have no defaults on purpose.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Storage.Redis.CacheTTL == 0 {
		cfg.Storage.Redis.CacheTTL = defaultCacheTTL
	}
	if cfg.RateLimit.Attempts == 0 {
		cfg.RateLimit.Attempts = defaultRateLimitAttempts
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = defaultRateLimitWindow
	}
	if cfg.RateLimit.Jail == 0 {
		cfg.RateLimit.Jail = defaultRateLimitJail
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
