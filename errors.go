package knitter

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrConfiguration = errors.New("knitter: invalid configuration")
	ErrInvalidInput  = errors.New("knitter: invalid input")
)

// ConfigurationError reports an unusable palette or conversion option.
type ConfigurationError struct {
	Op     string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "knitter: " + e.Op + ": " + e.Reason
}

// Is makes errors.Is(err, ErrConfiguration) hold for every ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvalidInputError reports a pixel grid that cannot be converted, such as
// one with zero width or height.
type InvalidInputError struct {
	Op     string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "knitter: " + e.Op + ": " + e.Reason
}

// Is makes errors.Is(err, ErrInvalidInput) hold for every InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func configErrorf(op, format string, args ...interface{}) error {
	return &ConfigurationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func inputErrorf(op, format string, args ...interface{}) error {
	return &InvalidInputError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
