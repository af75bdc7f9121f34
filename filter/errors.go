package filter

import "fmt"

// InvalidInputError reports input that never yielded a usable monitor match:
// broken top-level JSON, a missing monitor_match, or a match without an EVM
// payload.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid filter input: %v", e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// MissingFieldError reports a monitor match that parsed but carries no block
// number.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("monitor match has no %s", e.Field)
}

// ConversionError reports a block number value that is not hexadecimal text.
type ConversionError struct {
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert block number %q is err: %v", e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
