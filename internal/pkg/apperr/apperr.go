package apperr

import "errors"

var (
	// ErrNotFound is returned when a user or profile does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUpstreamUnavailable covers store and completion-service connectivity
	// failures, including timeouts.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConfiguration marks missing required configuration. Fatal at startup,
	// never returned per-request.
	ErrConfiguration = errors.New("configuration error")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}
