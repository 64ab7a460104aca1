package cache

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TTL configuration defaults and bounds.
const (
	// DefaultTTL is the default page cache TTL.
	DefaultTTL = time.Hour

	// MinTTL is the minimum allowed TTL.
	MinTTL = time.Minute

	// MaxTTL is the maximum allowed TTL (7 days).
	MaxTTL = 7 * 24 * time.Hour

	// EnvTTLSeconds overrides the TTL, in seconds.
	EnvTTLSeconds = "SCROLLFEED_CACHE_TTL_SECONDS"

	// EnvEnabled enables or disables the cache ("true"/"false").
	EnvEnabled = "SCROLLFEED_CACHE_ENABLED"

	// EnvDir overrides the cache directory.
	EnvDir = "SCROLLFEED_CACHE_DIR"
)

// ErrInvalidTTL is returned when a TTL is outside the allowed range.
var ErrInvalidTTL = fmt.Errorf("TTL must be between %s and %s", MinTTL, MaxTTL)

// ValidateTTL checks a TTL against the allowed range.
func ValidateTTL(ttl time.Duration) error {
	if ttl < MinTTL || ttl > MaxTTL {
		return fmt.Errorf("%w: got %s", ErrInvalidTTL, ttl)
	}
	return nil
}

// TTLFromEnv returns the TTL from EnvTTLSeconds, or fallback when the
// variable is unset or unparsable. The result is validated.
func TTLFromEnv(fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(EnvTTLSeconds)
	if raw == "" {
		return fallback, ValidateTTL(fallback)
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, ValidateTTL(fallback)
	}

	ttl := time.Duration(seconds) * time.Second
	if validateErr := ValidateTTL(ttl); validateErr != nil {
		return 0, validateErr
	}
	return ttl, nil
}

// EnabledFromEnv returns the cache-enabled flag from EnvEnabled, or
// fallback when unset.
func EnabledFromEnv(fallback bool) bool {
	raw := os.Getenv(EnvEnabled)
	if raw == "" {
		return fallback
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return enabled
}

// DirFromEnv returns the cache directory from EnvDir, or fallback when
// unset.
func DirFromEnv(fallback string) string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	return fallback
}
