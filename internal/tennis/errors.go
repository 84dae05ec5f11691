package tennis

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess is reported when the data file does not exist or cannot be read.
	ErrFileAccess = errors.New("file not found")
	// ErrEmptyInput is reported when the data file contains no rows.
	ErrEmptyInput = errors.New("no data")
	// ErrMalformedInput is reported when the delimited text cannot be parsed.
	ErrMalformedInput = errors.New("parse error")
	// ErrMissingColumns is reported when required columns are absent from the header.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrNoData is the fatal error returned once loading has produced no rows.
	ErrNoData = errors.New("no data loaded")

	// ErrCast is recorded when a column cannot be converted to its target type.
	ErrCast = errors.New("datatype conversion issue")
	// ErrTimeParse is recorded when the time column does not match PlayTimeLayout.
	ErrTimeParse = errors.New("play time conversion issue")
)

// LoadError describes a load failure that is reported and then swallowed.
type LoadError struct {
	Kind error
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NoDataError is returned by Loader.Load when the loaded dataset is empty.
// Cause holds the reported load failure, if there was one.
type NoDataError struct {
	Path  string
	Cause error
}

func (e *NoDataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s from %s (%v)", ErrNoData, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s from %s", ErrNoData, e.Path)
}

func (e *NoDataError) Is(target error) bool {
	return target == ErrNoData
}

func (e *NoDataError) Unwrap() error {
	return e.Cause
}

// CastError records a failed conversion of a single column value.
type CastError struct {
	Column string
	Row    int
	Value  string
	Target ColumnType
}

func (e *CastError) Error() string {
	return fmt.Sprintf("%s: cannot convert %q in column %q (row %d) to %s", ErrCast, e.Value, e.Column, e.Row, e.Target)
}

func (e *CastError) Unwrap() error {
	return ErrCast
}
