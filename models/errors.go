package models

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrFormatMismatch = errors.New("input does not match the color format")
	ErrRangeViolation = errors.New("color component out of range")
	ErrArity          = errors.New("wrong number of color components")
	ErrParseFailure   = errors.New("color component could not be parsed")
)

// FormatMismatchError is returned when a string does not follow the grammar
// of the requested format. Want is zero when no format matched at all.
type FormatMismatchError struct {
	Input string
	Want  Format
}

func (e *FormatMismatchError) Error() string {
	if !e.Want.IsValid() {
		return fmt.Sprintf("%q is not a recognized color format", e.Input)
	}
	return fmt.Sprintf("%q does not match the %s format", e.Input, e.Want)
}

func (e *FormatMismatchError) Is(target error) bool { return target == ErrFormatMismatch }

// RangeViolationError reports a numeric component outside its declared range.
type RangeViolationError struct {
	Component string
	Value     float64
	Min       float64
	Max       float64
}

func (e *RangeViolationError) Error() string {
	return fmt.Sprintf("%s %s is out of range %s-%s",
		e.Component, formatNumber(e.Value), formatNumber(e.Min), formatNumber(e.Max))
}

func (e *RangeViolationError) Is(target error) bool { return target == ErrRangeViolation }

// ArityError reports a functional notation with too few or too many components.
type ArityError struct {
	Format Format
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	if e.Format == FormatHex {
		return fmt.Sprintf("hex color needs 3, 6 or 8 digits, got %d", e.Got)
	}
	return fmt.Sprintf("%s expects %d components, got %d", e.Format, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool { return target == ErrArity }

// ParseError reports a token that is not a valid number, decimal or percent.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("cannot parse %q", e.Token)
}

func (e *ParseError) Is(target error) bool { return target == ErrParseFailure }

func (e *ParseError) Unwrap() error { return e.Err }

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
