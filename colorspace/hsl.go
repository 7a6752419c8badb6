// Package colorspace implements the pairwise color model conversions.
// RGB is the hub: every model converts to and from RGB, and LAB goes
// through CIE XYZ on the way. All functions are pure.
package colorspace

import (
	"math"

	"github.com/color-game/colorimetry/models"
)

// RGBToHSL converts an RGB color to HSL, keeping alpha.
func RGBToHSL(c models.RGBColor) models.HSLColor {
	r, g, b := unit(c)
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)

	l := (max + min) / 2

	delta := max - min
	if delta == 0 {
		// achromatic
		return models.NewHSLA(0, 0, l*100, c.Alpha())
	}

	var s float64
	if denom := 1 - math.Abs(2*l-1); denom > 0 {
		s = delta / denom
	}

	return models.NewHSLA(hue(r, g, b, max, delta), s*100, l*100, c.Alpha())
}

// HSLToRGB converts an HSL color to RGB, keeping alpha.
func HSLToRGB(c models.HSLColor) models.RGBColor {
	h := math.Mod(c.Hue(), 360) / 360
	s := c.Saturation() / 100
	l := c.Lightness() / 100

	if s == 0 {
		v := toByte(l)
		return models.NewRGBA(v, v, v, c.Alpha())
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return models.NewRGBA(
		toByte(hueToRGB(p, q, h+1.0/3)),
		toByte(hueToRGB(p, q, h)),
		toByte(hueToRGB(p, q, h-1.0/3)),
		c.Alpha(),
	)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// hue returns the hue angle in [0, 360) for normalized r, g, b whose
// largest component is max and spread is delta (delta > 0).
func hue(r, g, b, max, delta float64) float64 {
	var h float64
	switch max {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

// unit returns the channels of c scaled to [0, 1].
func unit(c models.RGBColor) (r, g, b float64) {
	return float64(c.Red()) / 255, float64(c.Green()) / 255, float64(c.Blue()) / 255
}

// toByte scales a [0, 1] value to the nearest 8-bit channel value.
func toByte(v float64) int {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}
