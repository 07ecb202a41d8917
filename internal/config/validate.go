package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Signing.validate(); err != nil {
		return fmt.Errorf("signing: %w", err)
	}

	if c.Notify.FunctionsURL != "" {
		if err := validateHTTPURL(c.Notify.FunctionsURL); err != nil {
			return fmt.Errorf("notify.functions_url: %w", err)
		}
	}

	if c.RateLimit.SigningPerMinute <= 0 {
		return fmt.Errorf("rate_limit.signing_per_minute must be > 0 (got %d)", c.RateLimit.SigningPerMinute)
	}

	return nil
}

func (s *SigningConfig) validate() error {
	if s.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be > 0 (got %v)", s.TokenTTL)
	}
	if s.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", s.MaxAttempts)
	}
	if s.MaxSignatureBytes <= 0 {
		return fmt.Errorf("max_signature_bytes must be > 0 (got %d)", s.MaxSignatureBytes)
	}
	if s.NotifyConcurrency < 1 {
		return fmt.Errorf("notify_concurrency must be >= 1 (got %d)", s.NotifyConcurrency)
	}
	if err := validateHTTPURL(s.PublicBaseURL); err != nil {
		return fmt.Errorf("public_base_url: %w", err)
	}
	s.PublicBaseURL = strings.TrimRight(s.PublicBaseURL, "/")
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
