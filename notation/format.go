package notation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/color-game/colorimetry/colorspace"
	"github.com/color-game/colorimetry/models"
)

// Format renders c in the notation f, converting through RGB when c is a
// different model.
func Format(c models.Color, f models.Format) (string, error) {
	if c == nil {
		return "", fmt.Errorf("%w: nil color", models.ErrFormatMismatch)
	}
	if f == models.FormatHex {
		return FormatHex(colorspace.ToRGB(c)), nil
	}
	if c.Format() != f {
		converted, err := colorspace.FromRGB(colorspace.ToRGB(c), f)
		if err != nil {
			return "", err
		}
		c = converted
	}
	return String(c), nil
}

// String renders c in its own functional notation.
func String(c models.Color) string {
	switch c := c.(type) {
	case models.RGBColor:
		return FormatRGB(c)
	case models.HSLColor:
		return FormatHSL(c)
	case models.HSVColor:
		return FormatHSV(c)
	case models.CMYKColor:
		return FormatCMYK(c)
	case models.LABColor:
		return FormatLAB(c)
	default:
		return ""
	}
}

// FormatHex renders c as "#RRGGBB", or "#RRGGBBAA" when it is translucent.
func FormatHex(c models.RGBColor) string {
	return colorspace.EncodeHex(c)
}

// FormatRGB renders c as "rgb(R,G,B)" or "rgba(R,G,B,A)".
func FormatRGB(c models.RGBColor) string {
	if c.Alpha() == 1 {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.Red(), c.Green(), c.Blue())
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.Red(), c.Green(), c.Blue(), formatAlpha(c.Alpha()))
}

// FormatHSL renders c as "hsl(H,S%,L%)" or "hsla(H,S%,L%,A)".
func FormatHSL(c models.HSLColor) string {
	if c.Alpha() == 1 {
		return fmt.Sprintf("hsl(%d,%d%%,%d%%)", round(c.Hue()), round(c.Saturation()), round(c.Lightness()))
	}
	return fmt.Sprintf("hsla(%d,%d%%,%d%%,%s)",
		round(c.Hue()), round(c.Saturation()), round(c.Lightness()), formatAlpha(c.Alpha()))
}

// FormatHSV renders c as "hsv(H,S%,V%)" or "hsva(H,S%,V%,A)".
func FormatHSV(c models.HSVColor) string {
	if c.Alpha() == 1 {
		return fmt.Sprintf("hsv(%d,%d%%,%d%%)", round(c.Hue()), round(c.Saturation()), round(c.Value()))
	}
	return fmt.Sprintf("hsva(%d,%d%%,%d%%,%s)",
		round(c.Hue()), round(c.Saturation()), round(c.Value()), formatAlpha(c.Alpha()))
}

// FormatCMYK renders c as "cmyk(C%,M%,Y%,K%)".
func FormatCMYK(c models.CMYKColor) string {
	return fmt.Sprintf("cmyk(%d%%,%d%%,%d%%,%d%%)",
		round(c.Cyan()), round(c.Magenta()), round(c.Yellow()), round(c.Key()))
}

// FormatLAB renders c as "lab(L,a,b)" with one decimal per component.
func FormatLAB(c models.LABColor) string {
	return fmt.Sprintf("lab(%s,%s,%s)", oneDecimal(c.Lightness()), oneDecimal(c.A()), oneDecimal(c.B()))
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', 2, 64)
}

func round(v float64) int {
	return int(math.Round(v))
}

// oneDecimal never prints "-0.0".
func oneDecimal(v float64) string {
	v = math.Round(v*10) / 10
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
