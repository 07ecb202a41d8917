package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Signing   SigningConfig   `yaml:"signing"`
	Notify    NotifyConfig    `yaml:"notify"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy makes the signer IP come from X-Forwarded-For / X-Real-IP.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout bounds every statement server-side; zero leaves the
	// server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"docsign-backend"`
}

// AuthConfig holds settings for validating staff sessions issued by the
// hosted auth provider.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"docsign"`
}

// SigningConfig holds signer access token and capture settings.
//
// MaxAttempts is the base number of link uses per signer. Opening the
// signing page and every captured area each use one, so every signer also
// gets one extra attempt per area their role has to sign.
type SigningConfig struct {
	PublicBaseURL     string        `yaml:"public_base_url"      env:"SIGNING_PUBLIC_BASE_URL"      env-default:"http://localhost:3000"`
	TokenTTL          time.Duration `yaml:"token_ttl"            env:"SIGNING_TOKEN_TTL"            env-default:"72h"`
	MaxAttempts       int           `yaml:"max_attempts"         env:"SIGNING_MAX_ATTEMPTS"         env-default:"5"`
	MaxSignatureBytes int           `yaml:"max_signature_bytes"  env:"SIGNING_MAX_SIGNATURE_BYTES"  env-default:"524288"`
	NotifyConcurrency int           `yaml:"notify_concurrency"   env:"SIGNING_NOTIFY_CONCURRENCY"   env-default:"4"`
}

// NotifyConfig holds settings for the email and WhatsApp delivery functions.
// An empty FunctionsURL selects the logging stub.
type NotifyConfig struct {
	FunctionsURL string        `yaml:"functions_url" env:"NOTIFY_FUNCTIONS_URL"`
	APIKey       string        `yaml:"api_key"       env:"NOTIFY_API_KEY"`
	Timeout      time.Duration `yaml:"timeout"       env:"NOTIFY_TIMEOUT"       env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for the public signing endpoints.
type RateLimitConfig struct {
	SigningPerMinute int           `yaml:"signing_per_minute" env:"RATE_LIMIT_SIGNING_PER_MINUTE" env-default:"30"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}

// StubNotifications reports whether outbound notifications should only be logged.
func (c NotifyConfig) StubNotifications() bool {
	return c.FunctionsURL == ""
}
