package speclex

import (
	"errors"
	"fmt"
)

var errEmptyType = errors.New("token type must not be empty")

// SpecError is returned if a token specification cannot be constructed.
type SpecError struct {
	Type    TokType
	Pattern string
	Err     error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid token spec %q /%s/: %v", e.Type, e.Pattern, e.Err)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// ConversionError is reported when a converter rejects a match. It carries
// the raw text, the token type and the position of the offending match.
type ConversionError struct {
	Raw    string
	Type   TokType
	Line   int
	Column int
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s %q at %d:%d: %v", e.Type, e.Raw, e.Line, e.Column, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
