package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/color-game/colorimetry/models"
)

var errNotHexDigit = errors.New("invalid hex digit")

// DecodeHex decodes 3, 6 or 8 hex digits (without '#') into RGB.
// The 3-digit form doubles each nibble; the 8-digit form carries alpha.
// Bad digits are reported before a bad length.
func DecodeHex(digits string) (models.RGBColor, error) {
	for i := 0; i < len(digits); i++ {
		if _, ok := nibble(digits[i]); !ok {
			return models.RGBColor{}, &models.ParseError{Token: digits, Err: errNotHexDigit}
		}
	}

	switch len(digits) {
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6, 8:
	default:
		return models.RGBColor{}, &models.ArityError{Format: models.FormatHex, Want: 6, Got: len(digits)}
	}

	var channels [4]int
	channels[3] = 255
	for i := 0; i < len(digits)/2; i++ {
		hi, _ := nibble(digits[2*i])
		lo, _ := nibble(digits[2*i+1])
		channels[i] = hi<<4 | lo
	}

	return models.NewRGBA(channels[0], channels[1], channels[2], float64(channels[3])/255), nil
}

// EncodeHex renders c as uppercase "#RRGGBB", or "#RRGGBBAA" when alpha is
// not exactly 1.
func EncodeHex(c models.RGBColor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%02X%02X%02X", c.Red(), c.Green(), c.Blue())
	if c.Alpha() != 1 {
		fmt.Fprintf(&sb, "%02X", int(math.Round(c.Alpha()*255)))
	}
	return sb.String()
}

func nibble(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
