package colorspace

import (
	"math"

	"github.com/color-game/colorimetry/models"
)

// RGBToCMYK converts an RGB color to CMYK. Alpha is dropped.
// Pure black maps to C=M=Y=0, K=100.
func RGBToCMYK(c models.RGBColor) models.CMYKColor {
	r, g, b := unit(c)
	k := 1 - math.Max(math.Max(r, g), b)
	if k >= 1 {
		return models.NewCMYK(0, 0, 0, 100)
	}

	cyan := (1 - r - k) / (1 - k)
	magenta := (1 - g - k) / (1 - k)
	yellow := (1 - b - k) / (1 - k)

	return models.NewCMYK(cyan*100, magenta*100, yellow*100, k*100)
}

// CMYKToRGB converts a CMYK color to an opaque RGB color.
func CMYKToRGB(c models.CMYKColor) models.RGBColor {
	k := 1 - c.Key()/100
	return models.NewRGB(
		toByte((1-c.Cyan()/100)*k),
		toByte((1-c.Magenta()/100)*k),
		toByte((1-c.Yellow()/100)*k),
	)
}
