package picker

import (
	"errors"
	"fmt"
)

var (
	// ErrReentrant is returned when listeners call back into a controller
	// more than maxDepth levels deep.
	ErrReentrant = errors.New("picker: re-entrant call depth exceeded")
	// ErrDisposed is returned by operations on a disposed controller.
	ErrDisposed = errors.New("picker: controller disposed")
)

// ConfigurationError reports an option or setter value that cannot be used,
// such as a range start after its end or an unknown zoom name.
type ConfigurationError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("picker: invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ParseError reports disabled date values that failed to parse. Err holds
// every failing element.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "picker: disabled dates: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
