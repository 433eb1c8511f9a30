package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSessionTransition means complete/fail was called on a session
// that is not running. This is a programming error, not a data error.
var ErrInvalidSessionTransition = errors.New("invalid session transition")

// Normalization failure reasons. Per-item, never retried, never run-fatal.
type NormalizationReason string

const (
	ReasonMissingRequiredField NormalizationReason = "missing_required_field"
	ReasonInvalidPrice         NormalizationReason = "invalid_price"
	ReasonUnrecognizedUnit     NormalizationReason = "unrecognized_unit"
)

// NormalizationError describes why a single raw listing was rejected.
type NormalizationError struct {
	Reason NormalizationReason
	Field  string
	Detail string
}

func (e *NormalizationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("normalize %s: %s (%s)", e.Field, e.Reason, e.Detail)
	}
	return fmt.Sprintf("normalize %s: %s", e.Field, e.Reason)
}

// IsNormalizationError reports whether err is a per-item normalization
// failure that should be skipped rather than fail the adapter run.
func IsNormalizationError(err error) bool {
	var ne *NormalizationError
	return errors.As(err, &ne)
}
