package returns

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is against the detailed error types below.
var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrMissingField      = errors.New("missing field")
	ErrNumericConversion = errors.New("not a number")
	ErrInvalidKey        = errors.New("invalid key")
)

// MalformedRecordError reports a token that does not split into exactly one key and one value.
type MalformedRecordError struct {
	Line  int // 1-based line number in the batch.
	Token string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: token %q is not a key:value pair", e.Line, e.Token)
}

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }

// MissingFieldError reports a record lacking a field required by an operation.
type MissingFieldError struct {
	Field  string
	Record Record
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %q has no field %q", e.Record.String(), e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// NumericConversionError reports a non-empty value that cannot be read as a number.
type NumericConversionError struct {
	Field string
	Value string
	Err   error
}

func (e *NumericConversionError) Error() string {
	return fmt.Sprintf("field %q: cannot convert %q to a number: %v", e.Field, e.Value, e.Err)
}

func (e *NumericConversionError) Is(target error) bool { return target == ErrNumericConversion }

func (e *NumericConversionError) Unwrap() error { return e.Err }

// InvalidKeyError reports a ticker or a date that cannot be used as a series key.
type InvalidKeyError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("field %q: invalid key %q: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidKeyError) Is(target error) bool { return target == ErrInvalidKey }

func (e *InvalidKeyError) Unwrap() error { return e.Err }
