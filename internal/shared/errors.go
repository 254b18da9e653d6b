package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrUnknownDriver      = fmt.Errorf("unknown store driver")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Content store errors
	ErrNotFound           = fmt.Errorf("not found")
	ErrBackend            = fmt.Errorf("content store request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
