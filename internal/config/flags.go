package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-redis-addr redis address in format [host]:[port]
//	-redis-password redis AUTH password
//	-redis-db redis logical database index
//	-cache-ttl cache entry time-to-live (e.g., "60s")
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit-attempts failed attempts before lockout
//	-rate-limit-window failure counting window (e.g., "450s")
//	-rate-limit-jail lockout duration (e.g., "450s")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var redisAddr string
	var redisPassword string
	var redisDB int
	var cacheTTL time.Duration
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var rateLimitAttempts int
	var rateLimitWindow time.Duration
	var rateLimitJail time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")
	flag.StringVar(&redisPassword, "redis-password", "", "Redis password")
	flag.IntVar(&redisDB, "redis-db", 0, "Redis database index")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "Cache TTL (e.g., 60s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&rateLimitAttempts, "rate-limit-attempts", 0, "Failed attempts before lockout")
	flag.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Failure counting window (e.g., 450s)")
	flag.DurationVar(&rateLimitJail, "rate-limit-jail", 0, "Lockout duration (e.g., 450s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				Addr:     redisAddr,
				Password: redisPassword,
				DB:       redisDB,
				CacheTTL: cacheTTL,
			},
		},
		RateLimit: RateLimit{
			Attempts: rateLimitAttempts,
			Window:   rateLimitWindow,
			Jail:     rateLimitJail,
		},
		JSONFilePath: jsonConfigPath,
	}
}
