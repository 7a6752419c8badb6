package colorspace

import (
	"fmt"

	"github.com/color-game/colorimetry/models"
)

// ToRGB converts any model value to the RGB hub.
func ToRGB(c models.Color) models.RGBColor {
	switch c := c.(type) {
	case models.RGBColor:
		return c
	case models.HSLColor:
		return HSLToRGB(c)
	case models.HSVColor:
		return HSVToRGB(c)
	case models.CMYKColor:
		return CMYKToRGB(c)
	case models.LABColor:
		return LABToRGB(c)
	default:
		panic(fmt.Sprintf("colorspace: unexpected color type %T", c))
	}
}

// FromRGB converts rgb into the model of format f. Hex is an RGB notation,
// so FormatHex yields rgb unchanged.
func FromRGB(rgb models.RGBColor, f models.Format) (models.Color, error) {
	switch f {
	case models.FormatHex, models.FormatRGB:
		return rgb, nil
	case models.FormatHSL:
		return RGBToHSL(rgb), nil
	case models.FormatHSV:
		return RGBToHSV(rgb), nil
	case models.FormatCMYK:
		return RGBToCMYK(rgb), nil
	case models.FormatLAB:
		return RGBToLAB(rgb), nil
	default:
		return nil, fmt.Errorf("%w: unknown target format %v", models.ErrFormatMismatch, f)
	}
}
