package colorspace

import (
	"math"

	"github.com/color-game/colorimetry/models"
)

// RGBToHSV converts an RGB color to HSV, keeping alpha.
func RGBToHSV(c models.RGBColor) models.HSVColor {
	r, g, b := unit(c)
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	delta := max - min

	var s float64
	if max != 0 {
		s = delta / max
	}

	var h float64
	if delta != 0 {
		h = hue(r, g, b, max, delta)
	}

	return models.NewHSVA(h, s*100, max*100, c.Alpha())
}

// HSVToRGB converts an HSV color to RGB, keeping alpha.
func HSVToRGB(c models.HSVColor) models.RGBColor {
	h := math.Mod(c.Hue(), 360) / 60
	s := c.Saturation() / 100
	v := c.Value() / 100

	sector := math.Floor(h)
	f := h - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(sector) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return models.NewRGBA(toByte(r), toByte(g), toByte(b), c.Alpha())
}
