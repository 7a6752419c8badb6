package colorspace

import (
	"math"

	"github.com/color-game/colorimetry/models"
)

// XYZ is a CIE 1931 tristimulus value scaled so that Y of the D65 white is 100.
type XYZ struct {
	X, Y, Z float64
}

// D65 is the reference white used to normalize XYZ before LAB.
var D65 = XYZ{X: 95.047, Y: 100.0, Z: 108.883}

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
	labDelta   = 6.0 / 29.0
)

// linear sRGB -> XYZ, D65
var srgbToXYZ = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// XYZ -> linear sRGB, D65
var xyzToSRGB = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// RGBToXYZ gamma-decodes c and maps it through the sRGB D65 matrix.
func RGBToXYZ(c models.RGBColor) XYZ {
	r, g, b := unit(c)
	x, y, z := mulVec(srgbToXYZ, srgbToLinear(r), srgbToLinear(g), srgbToLinear(b))
	return XYZ{X: x * 100, Y: y * 100, Z: z * 100}
}

// XYZToRGB is the inverse of RGBToXYZ. Out-of-gamut results are clamped.
func XYZToRGB(v XYZ) models.RGBColor {
	r, g, b := mulVec(xyzToSRGB, v.X/100, v.Y/100, v.Z/100)
	return models.NewRGB(
		toByte(linearToSRGB(r)),
		toByte(linearToSRGB(g)),
		toByte(linearToSRGB(b)),
	)
}

// XYZToLAB converts XYZ to LAB relative to D65.
func XYZToLAB(v XYZ) models.LABColor {
	fx := labF(v.X / D65.X)
	fy := labF(v.Y / D65.Y)
	fz := labF(v.Z / D65.Z)
	return models.NewLAB(116*fy-16, 500*(fx-fy), 200*(fy-fz))
}

// LABToXYZ converts LAB relative to D65 back to XYZ.
func LABToXYZ(c models.LABColor) XYZ {
	fy := (c.Lightness() + 16) / 116
	fx := fy + c.A()/500
	fz := fy - c.B()/200

	var yr float64
	if c.Lightness() > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = c.Lightness() / labKappa
	}

	return XYZ{
		X: labFInv(fx) * D65.X,
		Y: yr * D65.Y,
		Z: labFInv(fz) * D65.Z,
	}
}

// RGBToLAB converts an RGB color to LAB. Alpha is dropped.
func RGBToLAB(c models.RGBColor) models.LABColor {
	return XYZToLAB(RGBToXYZ(c))
}

// LABToRGB converts a LAB color to an opaque RGB color, clamping to the
// sRGB gamut.
func LABToRGB(c models.LABColor) models.RGBColor {
	return XYZToRGB(LABToXYZ(c))
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return (116*t - 16) / labKappa
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c <= 0 {
		return 0
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	if c >= 1 {
		return 1
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func mulVec(m [3][3]float64, a, b, c float64) (x, y, z float64) {
	x = m[0][0]*a + m[0][1]*b + m[0][2]*c
	y = m[1][0]*a + m[1][1]*b + m[1][2]*c
	z = m[2][0]*a + m[2][1]*b + m[2][2]*c
	return
}
