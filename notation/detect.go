// Package notation reads and writes the textual color notations: hex and
// the functional forms rgb(), hsl(), hsv(), cmyk() and lab().
package notation

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/color-game/colorimetry/models"
)

// prefixes in detection order; the first match wins
var prefixes = []struct {
	prefix string
	format models.Format
}{
	{"#", models.FormatHex},
	{"rgb", models.FormatRGB},
	{"hsl", models.FormatHSL},
	{"hsv", models.FormatHSV},
	{"cmyk", models.FormatCMYK},
	{"lab", models.FormatLAB},
}

// Sanitize folds full-width characters to their ASCII forms and trims
// leading and trailing Unicode white space, including no-break spaces.
func Sanitize(input string) string {
	return strings.TrimFunc(width.Narrow.String(input), isSpace)
}

// Detect infers the format of input by prefix. It reports false, not an
// error, when nothing matches.
func Detect(input string) (models.Format, bool) {
	s := strings.ToLower(Sanitize(input))
	for _, p := range prefixes {
		if strings.HasPrefix(s, p.prefix) {
			return p.format, true
		}
	}
	return 0, false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\u200B' || r == '\uFEFF'
}
