package errors

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// RetryPolicy defines the retry behavior for a specific error tier.
type RetryPolicy struct {
	// MaxAttempts is the maximum number of retry attempts (0 means no retry).
	MaxAttempts int `yaml:"max_attempts"`

	// InitialDelay is the starting backoff duration.
	InitialDelay time.Duration `yaml:"initial_delay"`

	// MaxDelay is the maximum backoff duration.
	MaxDelay time.Duration `yaml:"max_delay"`

	// Multiplier is the backoff multiplier (default: 2.0).
	Multiplier float64 `yaml:"multiplier"`

	// UseRetryAfter indicates whether to respect Retry-After for RateLimit errors.
	UseRetryAfter bool `yaml:"use_retry_after"`

	// JitterPercent is the jitter percentage (default: 0.1 for 10%).
	JitterPercent float64 `yaml:"jitter_percent"`
}

// DefaultRetryPolicies returns the default retry policies for each error tier.
func DefaultRetryPolicies() map[ErrorTier]*RetryPolicy {
	return map[ErrorTier]*RetryPolicy{
		TierTransient:         defaultTransientPolicy(),
		TierExternalRateLimit: defaultRateLimitPolicy(),
		TierExternalDegrading: defaultDegradingPolicy(),
		TierPermanent:         defaultNoRetryPolicy(),
		TierUserFixable:       defaultNoRetryPolicy(),
	}
}

func defaultTransientPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts:   5,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		Multiplier:    2.0,
		UseRetryAfter: false,
		JitterPercent: 0.1,
	}
}

func defaultRateLimitPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts:   10,
		InitialDelay:  1 * time.Second,
		MaxDelay:      60 * time.Second,
		Multiplier:    2.0,
		UseRetryAfter: true,
		JitterPercent: 0.1,
	}
}

func defaultDegradingPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts:   3,
		InitialDelay:  5 * time.Second,
		MaxDelay:      30 * time.Second,
		Multiplier:    2.0,
		UseRetryAfter: false,
		JitterPercent: 0.1,
	}
}

func defaultNoRetryPolicy() *RetryPolicy {
	return &RetryPolicy{}
}

// GetRetryPolicy returns the retry policy for a given error tier.
func GetRetryPolicy(tier ErrorTier) *RetryPolicy {
	policies := DefaultRetryPolicies()
	if policy, ok := policies[tier]; ok {
		return policy
	}
	return defaultNoRetryPolicy()
}

// RetryExecutor executes operations with retry logic based on error tiers.
type RetryExecutor struct {
	policies map[ErrorTier]*RetryPolicy
}

// NewRetryExecutor creates a new RetryExecutor with the given policies.
// Nil policies fall back to DefaultRetryPolicies.
func NewRetryExecutor(policies map[ErrorTier]*RetryPolicy) *RetryExecutor {
	if policies == nil {
		policies = DefaultRetryPolicies()
	}
	return &RetryExecutor{policies: policies}
}

// Execute runs the given function with retry logic based on the error tier.
// Returns the last error if all attempts fail.
func (e *RetryExecutor) Execute(ctx context.Context, tier ErrorTier, fn func() error) error {
	policy := e.getPolicy(tier)
	if policy.MaxAttempts <= 0 {
		return fn()
	}
	return e.executeWithRetry(ctx, policy, fn)
}

func (e *RetryExecutor) getPolicy(tier ErrorTier) *RetryPolicy {
	if policy, ok := e.policies[tier]; ok {
		return policy
	}
	return defaultNoRetryPolicy()
}

func (e *RetryExecutor) executeWithRetry(ctx context.Context, policy *RetryPolicy, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= policy.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt >= policy.MaxAttempts {
			return lastErr
		}

		delay := e.computeDelay(lastErr, attempt, policy)
		if err := waitBeforeRetry(ctx, delay); err != nil {
			return lastErr
		}
	}

	return lastErr
}

func (e *RetryExecutor) computeDelay(err error, attempt int, policy *RetryPolicy) time.Duration {
	if policy.UseRetryAfter {
		if retryAfter := extractRetryAfter(err); retryAfter > 0 {
			return retryAfter
		}
	}

	delay := CalculateDelay(attempt, policy)
	return AddJitter(delay, policy.JitterPercent)
}

func extractRetryAfter(err error) time.Duration {
	var te *TieredError
	if errors.As(err, &te) {
		return te.RetryAfter
	}
	return 0
}

func waitBeforeRetry(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// CalculateDelay computes the backoff delay for a given attempt using exponential backoff.
// Formula: delay = initial * (multiplier ^ attempt), capped at max_delay.
func CalculateDelay(attempt int, policy *RetryPolicy) time.Duration {
	if policy == nil {
		return 0
	}

	multiplier := policy.Multiplier
	if multiplier <= 0 {
		multiplier = 2.0
	}

	factor := math.Pow(multiplier, float64(attempt))
	delay := time.Duration(float64(policy.InitialDelay) * factor)

	if delay > policy.MaxDelay {
		return policy.MaxDelay
	}
	return delay
}

// AddJitter applies a random jitter to the delay to prevent thundering herd.
// The jitter is within ±jitterPercent of the original delay.
func AddJitter(delay time.Duration, jitterPercent float64) time.Duration {
	if jitterPercent <= 0 {
		return delay
	}

	jitterRange := float64(delay) * jitterPercent
	offset := (rand.Float64()*2 - 1) * jitterRange
	jittered := time.Duration(float64(delay) + offset)

	if jittered < time.Millisecond {
		return time.Millisecond
	}
	return jittered
}
