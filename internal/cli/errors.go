package cli

import (
	"fmt"
	"strings"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// UnknownOption: an option-like token has no match in the registry.
	UnknownOption ErrorKind = iota
	// MissingValue: a required or repeatable option's value is absent,
	// empty, or itself option-like.
	MissingValue
	// InvalidEnumValue: a value is not a member of the allowed set.
	InvalidEnumValue
	// InvalidNumber: a value does not parse as a number.
	InvalidNumber
)

// ParseError is the only error type Parse returns. A parse failure is
// terminal; no partial Args are produced.
type ParseError struct {
	Kind   ErrorKind
	Option string // the offending token or canonical --name form
	msg    string
}

func (e *ParseError) Error() string {
	return e.msg
}

func errUnknown(token string) *ParseError {
	return &ParseError{
		Kind:   UnknownOption,
		Option: token,
		msg:    fmt.Sprintf("Unknown option %s", token),
	}
}

func errMissingValue(name string) *ParseError {
	return &ParseError{
		Kind:   MissingValue,
		Option: "--" + name,
		msg:    fmt.Sprintf("--%s requires a value", name),
	}
}

func errInvalidEnum(name string, allowed []string) *ParseError {
	return &ParseError{
		Kind:   InvalidEnumValue,
		Option: "--" + name,
		msg:    fmt.Sprintf("--%s valid values: [%s]", name, strings.Join(allowed, ", ")),
	}
}

func errInvalidNumber(name string) *ParseError {
	return &ParseError{
		Kind:   InvalidNumber,
		Option: "--" + name,
		msg:    fmt.Sprintf("--%s must be a number", name),
	}
}
