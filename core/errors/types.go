// Package errors implements a 5-tier error taxonomy with classification and handling behavior.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorTier represents the classification tier for errors.
// Each tier has defined behavior for retry policy, notification, and escalation.
type ErrorTier int

const (
	// TierTransient indicates temporary errors that should be silently retried.
	// Examples: network timeouts, connection resets during a provider call.
	TierTransient ErrorTier = iota

	// TierPermanent indicates errors that will not resolve with retry.
	// Examples: unsupported framework, unknown protocol target, invalid input.
	TierPermanent

	// TierUserFixable indicates errors that require user intervention.
	// Examples: missing API key, invalid project configuration.
	TierUserFixable

	// TierExternalRateLimit indicates rate limiting from an LLM provider.
	TierExternalRateLimit

	// TierExternalDegrading indicates provider-side degradation.
	// Examples: 5xx responses, partial failures.
	TierExternalDegrading
)

var tierNames = map[ErrorTier]string{
	TierTransient:         "transient",
	TierPermanent:         "permanent",
	TierUserFixable:       "user_fixable",
	TierExternalRateLimit: "external_rate_limit",
	TierExternalDegrading: "external_degrading",
}

func (t ErrorTier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// TierBehavior defines the handling behavior for an error tier.
type TierBehavior struct {
	// ShouldRetry indicates whether errors of this tier should be retried.
	ShouldRetry bool

	// MaxRetries is the maximum number of retry attempts.
	MaxRetries int

	// BaseBackoff is the initial backoff duration.
	BaseBackoff time.Duration

	// MaxBackoff is the maximum backoff duration.
	MaxBackoff time.Duration

	// ShouldNotify indicates whether to notify the user.
	ShouldNotify bool

	// ShouldEscalate indicates whether to escalate to a higher-level handler.
	ShouldEscalate bool
}

// DefaultBehaviors returns the default behavior for each error tier.
func DefaultBehaviors() map[ErrorTier]TierBehavior {
	return map[ErrorTier]TierBehavior{
		TierTransient: {
			ShouldRetry:    true,
			MaxRetries:     3,
			BaseBackoff:    100 * time.Millisecond,
			MaxBackoff:     5 * time.Second,
			ShouldNotify:   false,
			ShouldEscalate: false,
		},
		TierPermanent: {
			ShouldRetry:    false,
			MaxRetries:     0,
			BaseBackoff:    0,
			MaxBackoff:     0,
			ShouldNotify:   true,
			ShouldEscalate: true,
		},
		TierUserFixable: {
			ShouldRetry:    false,
			MaxRetries:     0,
			BaseBackoff:    0,
			MaxBackoff:     0,
			ShouldNotify:   true,
			ShouldEscalate: false,
		},
		TierExternalRateLimit: {
			ShouldRetry:    true,
			MaxRetries:     5,
			BaseBackoff:    1 * time.Second,
			MaxBackoff:     60 * time.Second,
			ShouldNotify:   true,
			ShouldEscalate: false,
		},
		TierExternalDegrading: {
			ShouldRetry:    true,
			MaxRetries:     3,
			BaseBackoff:    500 * time.Millisecond,
			MaxBackoff:     30 * time.Second,
			ShouldNotify:   true,
			ShouldEscalate: true,
		},
	}
}

// TieredError wraps an error with tier classification.
type TieredError struct {
	Tier       ErrorTier
	Message    string
	Underlying error
	StatusCode int
	RetryAfter time.Duration
	Context    map[string]string
}

// Error implements the error interface.
func (e *TieredError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Tier, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s] %s", e.Tier, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *TieredError) Unwrap() error {
	return e.Underlying
}

// NewTieredError creates a new TieredError with the given tier and message.
func NewTieredError(tier ErrorTier, message string, underlying error) *TieredError {
	return &TieredError{
		Tier:       tier,
		Message:    message,
		Underlying: underlying,
		Context:    make(map[string]string),
	}
}

// WithStatusCode adds an HTTP status code to the error.
func (e *TieredError) WithStatusCode(code int) *TieredError {
	e.StatusCode = code
	return e
}

// WithRetryAfter adds a retry-after duration to the error.
func (e *TieredError) WithRetryAfter(d time.Duration) *TieredError {
	e.RetryAfter = d
	return e
}

// WithContext adds context key-value pairs to the error.
func (e *TieredError) WithContext(key, value string) *TieredError {
	e.Context[key] = value
	return e
}

// GetTier extracts the ErrorTier from an error, defaulting to Permanent.
func GetTier(err error) ErrorTier {
	var te *TieredError
	if errors.As(err, &te) {
		return te.Tier
	}
	return TierPermanent
}

// GetBehavior returns the behavior for an error's tier.
func GetBehavior(err error) TierBehavior {
	tier := GetTier(err)
	behaviors := DefaultBehaviors()
	return behaviors[tier]
}

// IsRetryable checks if an error should be retried based on its tier.
func IsRetryable(err error) bool {
	return GetBehavior(err).ShouldRetry
}

// Common sentinel errors for each tier.
var (
	// Transient errors
	ErrTimeout          = NewTieredError(TierTransient, "operation timed out", nil)
	ErrTemporaryFailure = NewTieredError(TierTransient, "temporary failure", nil)
	ErrConnectionReset  = NewTieredError(TierTransient, "connection reset", nil)

	// Permanent errors
	ErrTargetNotRegistered  = NewTieredError(TierPermanent, "protocol target not registered", nil)
	ErrUnsupportedFramework = NewTieredError(TierPermanent, "framework not supported", nil)
	ErrUnsupportedORM       = NewTieredError(TierPermanent, "orm not supported", nil)
	ErrInvalidInput         = NewTieredError(TierPermanent, "invalid input", nil)
	ErrNotFound             = NewTieredError(TierPermanent, "not found", nil)

	// User-fixable errors
	ErrMissingProjectName = NewTieredError(TierUserFixable, "project name is required", nil)
	ErrMissingAPIKey      = NewTieredError(TierUserFixable, "missing API key", nil)
	ErrInvalidCredentials = NewTieredError(TierUserFixable, "invalid credentials", nil)

	// Rate limit errors
	ErrRateLimited   = NewTieredError(TierExternalRateLimit, "rate limited", nil).WithStatusCode(http.StatusTooManyRequests)
	ErrQuotaExceeded = NewTieredError(TierExternalRateLimit, "quota exceeded", nil)

	// Degrading errors
	ErrProviderUnavailable = NewTieredError(TierExternalDegrading, "provider unavailable", nil).WithStatusCode(http.StatusServiceUnavailable)
	ErrBadGateway          = NewTieredError(TierExternalDegrading, "bad gateway", nil).WithStatusCode(http.StatusBadGateway)
	ErrGatewayTimeout      = NewTieredError(TierExternalDegrading, "gateway timeout", nil).WithStatusCode(http.StatusGatewayTimeout)
)

// WrapWithTier wraps an error with a tier classification.
func WrapWithTier(tier ErrorTier, message string, err error) error {
	if err == nil {
		return nil
	}

	// Don't double-wrap TieredErrors
	var te *TieredError
	if errors.As(err, &te) {
		// Preserve existing tier if wrapping
		return &TieredError{
			Tier:       te.Tier,
			Message:    message,
			Underlying: err,
			StatusCode: te.StatusCode,
			RetryAfter: te.RetryAfter,
			Context:    te.Context,
		}
	}

	return NewTieredError(tier, message, err)
}
