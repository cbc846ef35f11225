package reconcile

import (
	"time"

	"state-reconciler/core/invoker"
)

// Config holds tunable reconciliation settings shared by all integrations.
type Config struct {
	// CacheTTLSeconds is the time-to-live for cached state snapshots.
	// Zero disables caching so every plan fetches fresh state.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
	// RetryAttempts is the maximum number of tries per provider call.
	RetryAttempts int `mapstructure:"retry_attempts" default:"10"`
	// RetryTimeoutSeconds bounds the wall-clock time per provider call
	// across all attempts.
	RetryTimeoutSeconds int `mapstructure:"retry_timeout_seconds" default:"45"`
}

// CacheTTL returns the snapshot TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Policy builds the retry policy for provider calls from the configured
// budget, keeping the default backoff shape.
func (c Config) Policy() invoker.Policy {
	policy := invoker.DefaultPolicy()
	if c.RetryAttempts > 0 {
		policy.Attempts = c.RetryAttempts
	}
	if c.RetryTimeoutSeconds > 0 {
		policy.Timeout = time.Duration(c.RetryTimeoutSeconds) * time.Second
	}
	return policy
}
