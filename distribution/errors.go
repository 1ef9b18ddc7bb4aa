package distribution

import (
	"errors"
	"fmt"
)

// ParamError reports a parameter rejected by a constructor.
type ParamError struct {
	// Code identifies the rule that was violated.
	Code ParamErrorCode

	// Family is the distribution family, e.g. "uniform".
	Family string

	// Param names the offending parameter ("rate", "stdev", "min/max").
	Param string

	// Value is the rejected value. For bound errors it is the lower bound.
	Value float64

	// Message is a human-readable description.
	Message string
}

// ParamErrorCode categorizes parameter errors.
type ParamErrorCode string

const (
	// ErrCodeNonPositive indicates a scale parameter <= 0.
	ErrCodeNonPositive ParamErrorCode = "NON_POSITIVE"

	// ErrCodeNotFinite indicates a NaN or infinite parameter.
	ErrCodeNotFinite ParamErrorCode = "NOT_FINITE"

	// ErrCodeInvertedBounds indicates min > max.
	ErrCodeInvertedBounds ParamErrorCode = "INVERTED_BOUNDS"

	// ErrCodeZeroWidth indicates min == max, which leaves no room for a density.
	ErrCodeZeroWidth ParamErrorCode = "ZERO_WIDTH"
)

// Error implements the error interface.
func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", e.Code, e.Family, e.Param, e.Message)
}

// IsParamError reports whether err (or anything it wraps) is a ParamError.
func IsParamError(err error) bool {
	var pe *ParamError
	return errors.As(err, &pe)
}

// HasCode reports whether err is a ParamError with the given code.
func HasCode(err error, code ParamErrorCode) bool {
	var pe *ParamError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// NewNonPositiveError creates a ParamError for a parameter that must be > 0.
func NewNonPositiveError(family, param string, v float64) *ParamError {
	return &ParamError{
		Code:    ErrCodeNonPositive,
		Family:  family,
		Param:   param,
		Value:   v,
		Message: fmt.Sprintf("must be > 0, got %g", v),
	}
}

// NewNotFiniteError creates a ParamError for a NaN or infinite parameter.
func NewNotFiniteError(family, param string, v float64) *ParamError {
	return &ParamError{
		Code:    ErrCodeNotFinite,
		Family:  family,
		Param:   param,
		Value:   v,
		Message: fmt.Sprintf("must be finite, got %g", v),
	}
}

// NewBoundsError creates a ParamError for uniform bounds with min >= max.
func NewBoundsError(family string, lo, hi float64) *ParamError {
	if lo == hi {
		return &ParamError{
			Code:    ErrCodeZeroWidth,
			Family:  family,
			Param:   "min/max",
			Value:   lo,
			Message: fmt.Sprintf("support [%g, %g] has zero width", lo, hi),
		}
	}
	return &ParamError{
		Code:    ErrCodeInvertedBounds,
		Family:  family,
		Param:   "min/max",
		Value:   lo,
		Message: fmt.Sprintf("min %g is greater than max %g", lo, hi),
	}
}
