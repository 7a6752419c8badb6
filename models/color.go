package models

import "math"

// Color is one of RGBColor, HSLColor, HSVColor, CMYKColor or LABColor.
// The set is closed; switches over it are expected to be exhaustive.
type Color interface {
	// Format returns the functional notation the value naturally renders in.
	Format() Format
	isColor()
}

// RGBColor is an sRGB color with 8-bit channels and a straight alpha.
type RGBColor struct {
	red, green, blue int
	alpha            float64
}

// NewRGB returns an opaque RGB color, clamping each channel into 0-255.
func NewRGB(red, green, blue int) RGBColor {
	return NewRGBA(red, green, blue, 1)
}

// NewRGBA returns an RGB color, clamping channels into 0-255 and alpha into 0-1.
func NewRGBA(red, green, blue int, alpha float64) RGBColor {
	return RGBColor{
		red:   clampInt(red, 0, 255),
		green: clampInt(green, 0, 255),
		blue:  clampInt(blue, 0, 255),
		alpha: clamp(alpha, 0, 1),
	}
}

// StrictRGBA is like NewRGBA but rejects out-of-range components.
func StrictRGBA(red, green, blue int, alpha float64) (RGBColor, error) {
	if err := checkAll(FormatRGB, float64(red), float64(green), float64(blue), alpha); err != nil {
		return RGBColor{}, err
	}
	return NewRGBA(red, green, blue, alpha), nil
}

func (c RGBColor) Red() int       { return c.red }
func (c RGBColor) Green() int     { return c.green }
func (c RGBColor) Blue() int      { return c.blue }
func (c RGBColor) Alpha() float64 { return c.alpha }
func (c RGBColor) Format() Format { return FormatRGB }
func (RGBColor) isColor()         {}

// HSLColor is hue (degrees), saturation and lightness (percent) with alpha.
type HSLColor struct {
	hue, saturation, lightness float64
	alpha                      float64
}

// NewHSL returns an opaque HSL color with clamped components.
func NewHSL(hue, saturation, lightness float64) HSLColor {
	return NewHSLA(hue, saturation, lightness, 1)
}

// NewHSLA returns an HSL color with clamped components.
func NewHSLA(hue, saturation, lightness, alpha float64) HSLColor {
	return HSLColor{
		hue:        clamp(hue, 0, 360),
		saturation: clamp(saturation, 0, 100),
		lightness:  clamp(lightness, 0, 100),
		alpha:      clamp(alpha, 0, 1),
	}
}

// StrictHSLA is like NewHSLA but rejects out-of-range components.
func StrictHSLA(hue, saturation, lightness, alpha float64) (HSLColor, error) {
	if err := checkAll(FormatHSL, hue, saturation, lightness, alpha); err != nil {
		return HSLColor{}, err
	}
	return NewHSLA(hue, saturation, lightness, alpha), nil
}

func (c HSLColor) Hue() float64        { return c.hue }
func (c HSLColor) Saturation() float64 { return c.saturation }
func (c HSLColor) Lightness() float64  { return c.lightness }
func (c HSLColor) Alpha() float64      { return c.alpha }
func (c HSLColor) Format() Format      { return FormatHSL }
func (HSLColor) isColor()              {}

// HSVColor is hue (degrees), saturation and value (percent) with alpha.
type HSVColor struct {
	hue, saturation, value float64
	alpha                  float64
}

// NewHSV returns an opaque HSV color with clamped components.
func NewHSV(hue, saturation, value float64) HSVColor {
	return NewHSVA(hue, saturation, value, 1)
}

// NewHSVA returns an HSV color with clamped components.
func NewHSVA(hue, saturation, value, alpha float64) HSVColor {
	return HSVColor{
		hue:        clamp(hue, 0, 360),
		saturation: clamp(saturation, 0, 100),
		value:      clamp(value, 0, 100),
		alpha:      clamp(alpha, 0, 1),
	}
}

// StrictHSVA is like NewHSVA but rejects out-of-range components.
func StrictHSVA(hue, saturation, value, alpha float64) (HSVColor, error) {
	if err := checkAll(FormatHSV, hue, saturation, value, alpha); err != nil {
		return HSVColor{}, err
	}
	return NewHSVA(hue, saturation, value, alpha), nil
}

func (c HSVColor) Hue() float64        { return c.hue }
func (c HSVColor) Saturation() float64 { return c.saturation }
func (c HSVColor) Value() float64      { return c.value }
func (c HSVColor) Alpha() float64      { return c.alpha }
func (c HSVColor) Format() Format      { return FormatHSV }
func (HSVColor) isColor()              {}

// CMYKColor holds ink percentages. It has no alpha channel.
type CMYKColor struct {
	cyan, magenta, yellow, key float64
}

// NewCMYK returns a CMYK color with every component clamped into 0-100.
func NewCMYK(cyan, magenta, yellow, key float64) CMYKColor {
	return CMYKColor{
		cyan:    clamp(cyan, 0, 100),
		magenta: clamp(magenta, 0, 100),
		yellow:  clamp(yellow, 0, 100),
		key:     clamp(key, 0, 100),
	}
}

// StrictCMYK is like NewCMYK but rejects out-of-range components.
func StrictCMYK(cyan, magenta, yellow, key float64) (CMYKColor, error) {
	if err := checkAll(FormatCMYK, cyan, magenta, yellow, key); err != nil {
		return CMYKColor{}, err
	}
	return NewCMYK(cyan, magenta, yellow, key), nil
}

func (c CMYKColor) Cyan() float64    { return c.cyan }
func (c CMYKColor) Magenta() float64 { return c.magenta }
func (c CMYKColor) Yellow() float64  { return c.yellow }
func (c CMYKColor) Key() float64     { return c.key }
func (c CMYKColor) Format() Format   { return FormatCMYK }
func (CMYKColor) isColor()           {}

// LABColor is a CIE L*a*b* color relative to the D65 white point.
type LABColor struct {
	lightness, a, b float64
}

// NewLAB returns a LAB color, clamping L into 0-100 and a, b into -128..127.
func NewLAB(lightness, a, b float64) LABColor {
	return LABColor{
		lightness: clamp(lightness, 0, 100),
		a:         clamp(a, -128, 127),
		b:         clamp(b, -128, 127),
	}
}

// StrictLAB is like NewLAB but rejects out-of-range components.
func StrictLAB(lightness, a, b float64) (LABColor, error) {
	if err := checkAll(FormatLAB, lightness, a, b); err != nil {
		return LABColor{}, err
	}
	return NewLAB(lightness, a, b), nil
}

func (c LABColor) Lightness() float64 { return c.lightness }
func (c LABColor) A() float64         { return c.a }
func (c LABColor) B() float64         { return c.b }
func (c LABColor) Format() Format     { return FormatLAB }
func (LABColor) isColor()             {}

// checkAll tests values against the component table of f in order.
func checkAll(f Format, values ...float64) error {
	components := f.Components()
	for i, v := range values {
		if err := components[i].Check(v); err != nil {
			return err
		}
	}
	return nil
}

// Check returns a *RangeViolationError when v lies outside the component range.
func (c Component) Check(v float64) error {
	if math.IsNaN(v) || v < c.Min || v > c.Max {
		return &RangeViolationError{Component: c.Name, Value: v, Min: c.Min, Max: c.Max}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
