package notation

import (
	"math"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/color-game/colorimetry/models"
)

// NamedColor is an SVG 1.1 / CSS color keyword and how far a color is from it.
type NamedColor struct {
	Name     string
	RGB      models.RGBColor
	Exact    bool
	Distance int
}

// LookupName resolves a CSS color keyword such as "darkslateblue" or
// "Light Gray" to an opaque RGB color.
func LookupName(name string) (models.RGBColor, bool) {
	key := strings.ToLower(strings.Join(strings.FieldsFunc(Sanitize(name), isSpace), ""))
	c, ok := colornames.Map[key]
	if !ok {
		return models.RGBColor{}, false
	}
	return models.NewRGB(int(c.R), int(c.G), int(c.B)), true
}

// ClosestName returns the keyword nearest to c by Euclidean distance in RGB
// space. Alpha is ignored. Ties go to the alphabetically first name.
func ClosestName(c models.RGBColor) NamedColor {
	best := NamedColor{Distance: math.MaxInt}
	bestSquared := math.MaxInt
	for _, name := range colornames.Names {
		named := colornames.Map[name]
		dr := c.Red() - int(named.R)
		dg := c.Green() - int(named.G)
		db := c.Blue() - int(named.B)
		squared := dr*dr + dg*dg + db*db
		if squared < bestSquared {
			bestSquared = squared
			best = NamedColor{
				Name: name,
				RGB:  models.NewRGB(int(named.R), int(named.G), int(named.B)),
			}
		}
	}
	best.Exact = bestSquared == 0
	best.Distance = int(math.Round(math.Sqrt(float64(bestSquared))))
	return best
}
