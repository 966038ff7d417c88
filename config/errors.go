package config

import "errors"

var (
	// ErrInvalidValue is returned when a recognized key is set to a value
	// outside its enumerated set. The returned error always wraps this
	// sentinel and names the offending key and value.
	ErrInvalidValue = errors.New("config: invalid value")
	// ErrInvalidInt is returned when an integer-valued key cannot be
	// parsed or is out of range.
	ErrInvalidInt = errors.New("config: invalid integer value")
	// ErrMalformedLine is returned for a non-blank, non-comment line with
	// no "=" separator.
	ErrMalformedLine = errors.New("config: malformed line, expected key=value")
)
