package notation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/color-game/colorimetry/colorspace"
	"github.com/color-game/colorimetry/models"
)

var numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

var errNotNumber = errors.New("not a number")

// Parse detects the notation of input and parses it. Out-of-range numbers
// are clamped; use the validation package to reject them instead.
func Parse(input string) (models.Color, models.Format, error) {
	s := Sanitize(input)
	f, ok := Detect(s)
	if !ok {
		return nil, 0, &models.FormatMismatchError{Input: input}
	}

	var (
		c   models.Color
		err error
	)
	switch f {
	case models.FormatHex:
		c, err = ParseHex(s)
	case models.FormatRGB:
		c, err = ParseRGB(s)
	case models.FormatHSL:
		c, err = ParseHSL(s)
	case models.FormatHSV:
		c, err = ParseHSV(s)
	case models.FormatCMYK:
		c, err = ParseCMYK(s)
	case models.FormatLAB:
		c, err = ParseLAB(s)
	}
	if err != nil {
		return nil, f, err
	}
	return c, f, nil
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA". Only the ends of input
// are trimmed; white space after '#' is a bad digit.
func ParseHex(input string) (models.RGBColor, error) {
	s := Sanitize(input)
	if !strings.HasPrefix(s, "#") {
		return models.RGBColor{}, &models.FormatMismatchError{Input: input, Want: models.FormatHex}
	}
	return colorspace.DecodeHex(s[1:])
}

// ParseRGB parses "rgb(R,G,B)" or "rgba(R,G,B,A)".
func ParseRGB(input string) (models.RGBColor, error) {
	values, alpha, err := parseFunctional(input, models.FormatRGB, "rgb", "rgba", 3)
	if err != nil {
		return models.RGBColor{}, err
	}
	return models.NewRGBA(toChannel(values[0]), toChannel(values[1]), toChannel(values[2]), alpha), nil
}

// ParseHSL parses "hsl(H,S%,L%)" or "hsla(H,S%,L%,A)".
func ParseHSL(input string) (models.HSLColor, error) {
	values, alpha, err := parseFunctional(input, models.FormatHSL, "hsl", "hsla", 3)
	if err != nil {
		return models.HSLColor{}, err
	}
	return models.NewHSLA(values[0], values[1], values[2], alpha), nil
}

// ParseHSV parses "hsv(H,S%,V%)" or "hsva(H,S%,V%,A)".
func ParseHSV(input string) (models.HSVColor, error) {
	values, alpha, err := parseFunctional(input, models.FormatHSV, "hsv", "hsva", 3)
	if err != nil {
		return models.HSVColor{}, err
	}
	return models.NewHSVA(values[0], values[1], values[2], alpha), nil
}

// ParseCMYK parses "cmyk(C%,M%,Y%,K%)".
func ParseCMYK(input string) (models.CMYKColor, error) {
	values, _, err := parseFunctional(input, models.FormatCMYK, "cmyk", "", 4)
	if err != nil {
		return models.CMYKColor{}, err
	}
	return models.NewCMYK(values[0], values[1], values[2], values[3]), nil
}

// ParseLAB parses "lab(L,a,b)".
func ParseLAB(input string) (models.LABColor, error) {
	values, _, err := parseFunctional(input, models.FormatLAB, "lab", "", 3)
	if err != nil {
		return models.LABColor{}, err
	}
	return models.NewLAB(values[0], values[1], values[2]), nil
}

// parseFunctional splits "name(a, b, ...)" and parses its arguments. The
// alpha form alphaName takes one extra trailing argument; alpha is 1
// otherwise.
func parseFunctional(input string, f models.Format, name, alphaName string, arity int) ([]float64, float64, error) {
	fn, args, ok := SplitFunctional(input)
	if !ok || (fn != name && (alphaName == "" || fn != alphaName)) {
		return nil, 0, &models.FormatMismatchError{Input: input, Want: f}
	}

	want := arity
	if alphaName != "" && fn == alphaName {
		want++
	}
	if len(args) != want {
		return nil, 0, &models.ArityError{Format: f, Want: want, Got: len(args)}
	}

	values := make([]float64, arity)
	for i := 0; i < arity; i++ {
		v, _, err := parseNumber(args[i])
		if err != nil {
			return nil, 0, err
		}
		values[i] = v
	}

	alpha := 1.0
	if want > arity {
		v, percent, err := parseNumber(args[arity])
		if err != nil {
			return nil, 0, err
		}
		if percent {
			v /= 100
		}
		alpha = v
	}
	return values, alpha, nil
}

// SplitFunctional splits "name(arg, arg, ...)" into the lower-cased name and
// the trimmed arguments. An empty argument list yields no arguments.
func SplitFunctional(input string) (name string, args []string, ok bool) {
	s := Sanitize(input)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name = strings.ToLower(strings.TrimFunc(s[:open], isSpace))
	body := s[open+1 : len(s)-1]
	if strings.TrimFunc(body, isSpace) == "" {
		return name, nil, true
	}
	for _, arg := range strings.Split(body, ",") {
		args = append(args, strings.TrimFunc(arg, isSpace))
	}
	return name, args, true
}

// parseNumber parses an integer, decimal or percent token. The trailing '%'
// is stripped and reported.
func parseNumber(token string) (float64, bool, error) {
	text := token
	percent := strings.HasSuffix(text, "%")
	if percent {
		text = strings.TrimFunc(strings.TrimSuffix(text, "%"), isSpace)
	}
	if !numberPattern.MatchString(text) {
		return 0, percent, &models.ParseError{Token: token, Err: errNotNumber}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, percent, &models.ParseError{Token: token, Err: errNotNumber}
	}
	return v, percent, nil
}

// toChannel rounds v to an integer channel without overflowing int.
func toChannel(v float64) int {
	return int(math.Round(math.Max(-1, math.Min(256, v))))
}
