package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrRateUndetermined    = errors.New("mortgage rate could not be determined")
	ErrCustomRateRequired  = errors.New("custom appreciation rate is required")
	ErrUnknownField        = errors.New("unknown form field")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrMalformedResponse   = errors.New("malformed upstream response")
)

// UpstreamError is a non-2xx answer from one of the external services.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s service returned %d: %s", e.Service, e.StatusCode, e.Message)
}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
