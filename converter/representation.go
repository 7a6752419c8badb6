package converter

import (
	"github.com/color-game/colorimetry/colorspace"
	"github.com/color-game/colorimetry/models"
	"github.com/color-game/colorimetry/notation"
)

// ColorRepresentation holds one color in all six notations. Every value is
// derived from the same RGB hub value, so the bundle is self-consistent
// even though single conversions are lossy.
type ColorRepresentation struct {
	rgb  models.RGBColor
	hsl  models.HSLColor
	hsv  models.HSVColor
	cmyk models.CMYKColor
	lab  models.LABColor

	rgbString  string
	hexString  string
	hslString  string
	hsvString  string
	cmykString string
	labString  string
}

// Represent computes the RGB hub value of c and derives everything else
// from it.
func Represent(c models.Color) ColorRepresentation {
	rgb := colorspace.ToRGB(c)
	rep := ColorRepresentation{
		rgb:  rgb,
		hsl:  colorspace.RGBToHSL(rgb),
		hsv:  colorspace.RGBToHSV(rgb),
		cmyk: colorspace.RGBToCMYK(rgb),
		lab:  colorspace.RGBToLAB(rgb),
	}
	rep.rgbString = notation.FormatRGB(rep.rgb)
	rep.hexString = notation.FormatHex(rep.rgb)
	rep.hslString = notation.FormatHSL(rep.hsl)
	rep.hsvString = notation.FormatHSV(rep.hsv)
	rep.cmykString = notation.FormatCMYK(rep.cmyk)
	rep.labString = notation.FormatLAB(rep.lab)
	return rep
}

func (r ColorRepresentation) RGB() models.RGBColor   { return r.rgb }
func (r ColorRepresentation) HSL() models.HSLColor   { return r.hsl }
func (r ColorRepresentation) HSV() models.HSVColor   { return r.hsv }
func (r ColorRepresentation) CMYK() models.CMYKColor { return r.cmyk }
func (r ColorRepresentation) LAB() models.LABColor   { return r.lab }

func (r ColorRepresentation) RGBString() string  { return r.rgbString }
func (r ColorRepresentation) HexString() string  { return r.hexString }
func (r ColorRepresentation) HSLString() string  { return r.hslString }
func (r ColorRepresentation) HSVString() string  { return r.hsvString }
func (r ColorRepresentation) CMYKString() string { return r.cmykString }
func (r ColorRepresentation) LABString() string  { return r.labString }

// String returns the formatted string for f, or "" for an unknown format.
func (r ColorRepresentation) String(f models.Format) string {
	switch f {
	case models.FormatHex:
		return r.hexString
	case models.FormatRGB:
		return r.rgbString
	case models.FormatHSL:
		return r.hslString
	case models.FormatHSV:
		return r.hsvString
	case models.FormatCMYK:
		return r.cmykString
	case models.FormatLAB:
		return r.labString
	default:
		return ""
	}
}

// Response builds the JSON body served for a representation, including the
// closest CSS color keyword.
func (r ColorRepresentation) Response() models.ColorResponse {
	named := notation.ClosestName(r.rgb)
	return models.ColorResponse{
		Hex: models.ColorHex{
			Value: r.hexString,
			Clean: r.hexString[1:],
		},
		RGB: models.ColorRGB{
			Fraction: models.Fraction{
				R: float64(r.rgb.Red()) / 255,
				G: float64(r.rgb.Green()) / 255,
				B: float64(r.rgb.Blue()) / 255,
			},
			R:     r.rgb.Red(),
			G:     r.rgb.Green(),
			B:     r.rgb.Blue(),
			A:     r.rgb.Alpha(),
			Value: r.rgbString,
		},
		HSL: models.ColorHSL{
			Fraction: models.FractionHSL{
				H: r.hsl.Hue() / 360,
				S: r.hsl.Saturation() / 100,
				L: r.hsl.Lightness() / 100,
			},
			H:     roundInt(r.hsl.Hue()),
			S:     roundInt(r.hsl.Saturation()),
			L:     roundInt(r.hsl.Lightness()),
			Value: r.hslString,
		},
		HSV: models.ColorHSV{
			Fraction: models.FractionHSV{
				H: r.hsv.Hue() / 360,
				S: r.hsv.Saturation() / 100,
				V: r.hsv.Value() / 100,
			},
			H:     roundInt(r.hsv.Hue()),
			S:     roundInt(r.hsv.Saturation()),
			V:     roundInt(r.hsv.Value()),
			Value: r.hsvString,
		},
		CMYK: models.ColorCMYK{
			Fraction: models.FractionCMYK{
				C: r.cmyk.Cyan() / 100,
				M: r.cmyk.Magenta() / 100,
				Y: r.cmyk.Yellow() / 100,
				K: r.cmyk.Key() / 100,
			},
			C:     roundInt(r.cmyk.Cyan()),
			M:     roundInt(r.cmyk.Magenta()),
			Y:     roundInt(r.cmyk.Yellow()),
			K:     roundInt(r.cmyk.Key()),
			Value: r.cmykString,
		},
		LAB: models.ColorLAB{
			Value: r.labString,
			L:     roundTenth(r.lab.Lightness()),
			A:     roundTenth(r.lab.A()),
			B:     roundTenth(r.lab.B()),
		},
		Name: models.ColorName{
			Value:           named.Name,
			ClosestNamedHex: notation.FormatHex(named.RGB),
			ExactMatchName:  named.Exact,
			Distance:        named.Distance,
		},
	}
}
