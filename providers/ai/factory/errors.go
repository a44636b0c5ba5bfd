package factory

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every error caused by a missing or empty
	// required setting.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidArgument is matched by errors caused by an unrecognized
	// provider name.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ConfigError reports the environment variable a provider needs but did not get.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s environment variable is required", e.Field)
}

// Is makes errors.Is(err, ErrConfiguration) succeed for any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// UnknownProviderError reports a provider name outside the supported set.
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider: %s", e.Name)
}

// Is makes errors.Is(err, ErrInvalidArgument) succeed for any UnknownProviderError.
func (e *UnknownProviderError) Is(target error) bool {
	return target == ErrInvalidArgument
}
