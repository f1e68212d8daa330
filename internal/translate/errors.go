package translate

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText rejects blank input before any network call.
	ErrEmptyText = errors.New("text to translate is empty")

	// ErrInputTooLong rejects input over MaxInputLen runes before any
	// network call.
	ErrInputTooLong = errors.New("text is too long: maximum 100 characters allowed")

	// ErrRateLimited rejects a translation attempted during the cooldown
	// window. No network request is made. This is a transient condition,
	// not a hard failure.
	ErrRateLimited = errors.New("translation cooldown active: please wait")
)

// NetworkError is a transport failure: the provider was never reached or
// did not answer in time.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("could not reach translation service: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProviderError means the provider responded but declined to translate.
// Message carries the provider's own error text when available.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return "translation service returned an error"
	}
	return e.Message
}
