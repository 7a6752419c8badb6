package models

import (
	"errors"
	"math"
	"testing"
)

func TestNewClampsBothBounds(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"rgb low", NewRGBA(-1, -20, math.MinInt, -0.5), RGBColor{0, 0, 0, 0}},
		{"rgb high", NewRGBA(256, 1000, math.MaxInt, 1.5), RGBColor{255, 255, 255, 1}},
		{"rgb in range", NewRGB(1, 2, 3), RGBColor{1, 2, 3, 1}},
		{"rgb nan alpha", NewRGBA(1, 2, 3, nan), RGBColor{1, 2, 3, 0}},
		{"hsl low", NewHSLA(-10, -1, -1, -1), HSLColor{0, 0, 0, 0}},
		{"hsl high", NewHSLA(400, 101, 150, 2), HSLColor{360, 100, 100, 1}},
		{"hsl nan", NewHSLA(nan, nan, nan, nan), HSLColor{0, 0, 0, 0}},
		{"hsl opaque", NewHSL(10, 20, 30), HSLColor{10, 20, 30, 1}},
		{"hsv low", NewHSVA(-1, -1, -1, -1), HSVColor{0, 0, 0, 0}},
		{"hsv high", NewHSVA(361, 200, 200, 9), HSVColor{360, 100, 100, 1}},
		{"hsv nan", NewHSV(nan, nan, nan), HSVColor{0, 0, 0, 1}},
		{"cmyk low", NewCMYK(-1, -2, -3, -4), CMYKColor{0, 0, 0, 0}},
		{"cmyk high", NewCMYK(101, 200, 300, 400), CMYKColor{100, 100, 100, 100}},
		{"cmyk nan", NewCMYK(nan, 50, nan, 50), CMYKColor{0, 50, 0, 50}},
		{"lab low", NewLAB(-1, -129, -500), LABColor{0, -128, -128}},
		{"lab high", NewLAB(101, 128, 500), LABColor{100, 127, 127}},
		{"lab nan", NewLAB(nan, nan, nan), LABColor{0, -128, -128}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestStrictRejectsFirstBadComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		build     func() (Color, error)
		component string
		value     float64
	}{
		{"rgb red", func() (Color, error) { return StrictRGBA(256, 0, 0, 1) }, "red", 256},
		{"rgb blue before alpha", func() (Color, error) { return StrictRGBA(0, 0, -1, 2) }, "blue", -1},
		{"rgb alpha", func() (Color, error) { return StrictRGBA(0, 0, 0, 1.5) }, "alpha", 1.5},
		{"hsl hue", func() (Color, error) { return StrictHSLA(361, 101, 0, 1) }, "hue", 361},
		{"hsl lightness", func() (Color, error) { return StrictHSLA(0, 0, 101, 1) }, "lightness", 101},
		{"hsv value", func() (Color, error) { return StrictHSVA(0, 0, -0.5, 1) }, "value", -0.5},
		{"hsv nan saturation", func() (Color, error) { return StrictHSVA(0, math.NaN(), 0, 1) }, "saturation", math.NaN()},
		{"cmyk key", func() (Color, error) { return StrictCMYK(0, 0, 0, 101) }, "key", 101},
		{"cmyk cyan", func() (Color, error) { return StrictCMYK(-1, 0, 0, 101) }, "cyan", -1},
		{"lab a", func() (Color, error) { return StrictLAB(50, -129, 0) }, "a", -129},
		{"lab b", func() (Color, error) { return StrictLAB(50, 0, 128) }, "b", 128},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.build()
			if !errors.Is(err, ErrRangeViolation) {
				t.Fatalf("error = %v, want range violation", err)
			}
			var rangeErr *RangeViolationError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("error %T is not *RangeViolationError", err)
			}
			if rangeErr.Component != tt.component {
				t.Errorf("Component = %q, want %q", rangeErr.Component, tt.component)
			}
			if !(rangeErr.Value == tt.value || math.IsNaN(rangeErr.Value) && math.IsNaN(tt.value)) {
				t.Errorf("Value = %v, want %v", rangeErr.Value, tt.value)
			}
			if got != zeroOf(got) {
				t.Errorf("got %+v with error, want zero value", got)
			}
		})
	}
}

func zeroOf(c Color) Color {
	switch c.(type) {
	case RGBColor:
		return RGBColor{}
	case HSLColor:
		return HSLColor{}
	case HSVColor:
		return HSVColor{}
	case CMYKColor:
		return CMYKColor{}
	default:
		return LABColor{}
	}
}

func TestStrictAcceptsBounds(t *testing.T) {
	t.Parallel()

	if c, err := StrictRGBA(0, 255, 128, 0); err != nil || c != (RGBColor{0, 255, 128, 0}) {
		t.Errorf("StrictRGBA = (%+v, %v)", c, err)
	}
	if c, err := StrictHSLA(360, 100, 0, 1); err != nil || c != NewHSL(360, 100, 0) {
		t.Errorf("StrictHSLA = (%+v, %v)", c, err)
	}
	if c, err := StrictHSVA(0, 0, 100, 0.25); err != nil || c != NewHSVA(0, 0, 100, 0.25) {
		t.Errorf("StrictHSVA = (%+v, %v)", c, err)
	}
	if c, err := StrictCMYK(100, 0, 100, 0); err != nil || c != NewCMYK(100, 0, 100, 0) {
		t.Errorf("StrictCMYK = (%+v, %v)", c, err)
	}
	if c, err := StrictLAB(50, -128, 127); err != nil || c != NewLAB(50, -128, 127) {
		t.Errorf("StrictLAB = (%+v, %v)", c, err)
	}
}

func TestRangeViolationMessage(t *testing.T) {
	t.Parallel()

	_, err := StrictHSLA(0, 0, 150, 1)
	if got, want := err.Error(), "lightness 150 is out of range 0-100"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
