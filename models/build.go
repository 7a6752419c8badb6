package models

import (
	"errors"
	"math"
)

var ErrNotInteger = errors.New("integer required")

// NewColor builds a color of format f from component values in the order of
// f.Components(), clamping out-of-range values. Hex builds an RGB color and
// alpha may be left off for formats that have it.
func NewColor(f Format, values []float64) (Color, error) {
	f, values, err := componentValues(f, values)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatRGB:
		return NewRGBA(channel(values[0]), channel(values[1]), channel(values[2]), values[3]), nil
	case FormatHSL:
		return NewHSLA(values[0], values[1], values[2], values[3]), nil
	case FormatHSV:
		return NewHSVA(values[0], values[1], values[2], values[3]), nil
	case FormatCMYK:
		return NewCMYK(values[0], values[1], values[2], values[3]), nil
	default:
		return NewLAB(values[0], values[1], values[2]), nil
	}
}

// StrictColor is like NewColor but goes through the Strict constructors, so
// the first out-of-range component is reported instead of clamped. RGB
// channels must also be whole numbers.
func StrictColor(f Format, values []float64) (Color, error) {
	f, values, err := componentValues(f, values)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatRGB:
		if err := checkAll(FormatRGB, values...); err != nil {
			return nil, err
		}
		for _, v := range values[:3] {
			if v != math.Trunc(v) {
				return nil, &ParseError{Token: formatNumber(v), Err: ErrNotInteger}
			}
		}
		return StrictRGBA(int(values[0]), int(values[1]), int(values[2]), values[3])
	case FormatHSL:
		return StrictHSLA(values[0], values[1], values[2], values[3])
	case FormatHSV:
		return StrictHSVA(values[0], values[1], values[2], values[3])
	case FormatCMYK:
		return StrictCMYK(values[0], values[1], values[2], values[3])
	default:
		return StrictLAB(values[0], values[1], values[2])
	}
}

// componentValues checks the arity of values for f and appends an opaque
// alpha when it was omitted. The caller's slice is never modified.
func componentValues(f Format, values []float64) (Format, []float64, error) {
	if !f.IsValid() {
		return f, nil, &FormatMismatchError{Input: f.String(), Want: f}
	}
	if f == FormatHex {
		f = FormatRGB
	}

	want := len(f.Components())
	if f.HasAlpha() && len(values) == want-1 {
		values = append(values[:len(values):len(values)], 1)
	}
	if len(values) != want {
		return f, nil, &ArityError{Format: f, Want: want, Got: len(values)}
	}
	return f, values, nil
}

// channel rounds v to an int without overflowing; NewRGBA clamps the rest.
func channel(v float64) int {
	return int(math.Round(clamp(v, -1, 256)))
}
