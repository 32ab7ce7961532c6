package fitness

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInconsistentData = errors.New("inconsistent data")
	ErrUnknownActivity  = errors.New("unknown activity")
)

// InputError reports a rejected computation input.
type InputError struct {
	Field string
	Msg   string
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Msg)
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Msg)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// InconsistentDataError is a warning-level signal: a supplied total disagreed
// with the total recomputed from the item list.
type InconsistentDataError struct {
	Supplied   int `json:"supplied"`
	Recomputed int `json:"recomputed"`
	Tolerance  int `json:"tolerance"`
}

func (e *InconsistentDataError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: supplied total %d differs from recomputed total %d (tolerance %d)",
		ErrInconsistentData, e.Supplied, e.Recomputed, e.Tolerance)
}

func (e *InconsistentDataError) Unwrap() error { return ErrInconsistentData }

func invalidf(field, format string, args ...any) error {
	return &InputError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
