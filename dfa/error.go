package dfa

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrInvalidConfig indicates a Config failed validation.
	ErrInvalidConfig = errors.New("dfa: invalid config")

	// ErrStateLimitExceeded indicates subset construction built more
	// states than Config.MaxStates allows.
	ErrStateLimitExceeded = errors.New("dfa: state limit exceeded")
)

// ConfigError reports a Config that failed Validate.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return "dfa: invalid config: " + e.Message }

// Unwrap allows errors.Is(err, ErrInvalidConfig).
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// StateLimitExceededError reports that Builder.Build constructed more
// states than Limit allows and gave up.
type StateLimitExceededError struct {
	Limit int
}

func (e *StateLimitExceededError) Error() string {
	return fmt.Sprintf("dfa: state limit of %d exceeded during construction", e.Limit)
}

// Unwrap allows errors.Is(err, ErrStateLimitExceeded).
func (e *StateLimitExceededError) Unwrap() error { return ErrStateLimitExceeded }
