package models

import (
	"fmt"
	"strings"
)

// Format identifies one of the six textual color notations.
type Format int

const (
	FormatHex Format = iota + 1
	FormatRGB
	FormatHSL
	FormatHSV
	FormatCMYK
	FormatLAB
)

// Formats lists every supported format in detection order.
var Formats = []Format{FormatHex, FormatRGB, FormatHSL, FormatHSV, FormatCMYK, FormatLAB}

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	case FormatHSV:
		return "hsv"
	case FormatCMYK:
		return "cmyk"
	case FormatLAB:
		return "lab"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// MarshalText encodes the format by name so it can be used in JSON bodies.
func (f Format) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("unknown color format %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// IsValid reports whether f is one of the declared formats.
func (f Format) IsValid() bool {
	return f >= FormatHex && f <= FormatLAB
}

// ParseFormat maps a format name such as "hsl" or "HEX" to its Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex", "#":
		return FormatHex, nil
	case "rgb", "rgba":
		return FormatRGB, nil
	case "hsl", "hsla":
		return FormatHSL, nil
	case "hsv", "hsva", "hsb":
		return FormatHSV, nil
	case "cmyk":
		return FormatCMYK, nil
	case "lab":
		return FormatLAB, nil
	}
	return 0, fmt.Errorf("%w: unknown format name %q", ErrFormatMismatch, name)
}

// Component describes one numeric slot of a functional notation.
type Component struct {
	Name    string
	Min     float64
	Max     float64
	Percent bool // must carry a trailing '%'
	Integer bool // no fractional part allowed
}

// Components returns the component table of the functional form of f,
// including the optional alpha slot for formats that have one.
// Hex has no functional components and returns nil.
func (f Format) Components() []Component {
	switch f {
	case FormatRGB:
		return []Component{
			{Name: "red", Min: 0, Max: 255, Integer: true},
			{Name: "green", Min: 0, Max: 255, Integer: true},
			{Name: "blue", Min: 0, Max: 255, Integer: true},
			alphaComponent,
		}
	case FormatHSL:
		return []Component{
			{Name: "hue", Min: 0, Max: 360, Integer: true},
			{Name: "saturation", Min: 0, Max: 100, Integer: true, Percent: true},
			{Name: "lightness", Min: 0, Max: 100, Integer: true, Percent: true},
			alphaComponent,
		}
	case FormatHSV:
		return []Component{
			{Name: "hue", Min: 0, Max: 360, Integer: true},
			{Name: "saturation", Min: 0, Max: 100, Integer: true, Percent: true},
			{Name: "value", Min: 0, Max: 100, Integer: true, Percent: true},
			alphaComponent,
		}
	case FormatCMYK:
		return []Component{
			{Name: "cyan", Min: 0, Max: 100, Integer: true, Percent: true},
			{Name: "magenta", Min: 0, Max: 100, Integer: true, Percent: true},
			{Name: "yellow", Min: 0, Max: 100, Integer: true, Percent: true},
			{Name: "key", Min: 0, Max: 100, Integer: true, Percent: true},
		}
	case FormatLAB:
		return []Component{
			{Name: "lightness", Min: 0, Max: 100},
			{Name: "a", Min: -128, Max: 127},
			{Name: "b", Min: -128, Max: 127},
		}
	default:
		return nil
	}
}

// HasAlpha reports whether the functional form of f accepts an alpha slot.
func (f Format) HasAlpha() bool {
	switch f {
	case FormatHex, FormatRGB, FormatHSL, FormatHSV:
		return true
	default:
		return false
	}
}

var alphaComponent = Component{Name: "alpha", Min: 0, Max: 1}
