// Package validation checks color strings strictly, without converting them.
//
// It is stricter than the notation parser: a component the parser would
// clamp into range is reported here as invalid.
package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/color-game/colorimetry/models"
	"github.com/color-game/colorimetry/notation"
)

var (
	ErrMissingPercent    = errors.New("percent sign required")
	ErrUnexpectedPercent = errors.New("percent sign not allowed")
	ErrNotInteger        = models.ErrNotInteger
	ErrNotNumber         = errors.New("number required")
	ErrNotHexDigit       = errors.New("invalid hex digit")
)

var (
	functionalPattern = regexp.MustCompile(`^([A-Za-z]+)\s*\((.*)\)$`)
	hexDigitsPattern  = regexp.MustCompile(`^[0-9A-Fa-f]*$`)
	integerPattern    = regexp.MustCompile(`^[+-]?\d+$`)
	decimalPattern    = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)
)

// functional names per format: base form, then the alpha form if any
var functionalNames = map[models.Format][2]string{
	models.FormatRGB:  {"rgb", "rgba"},
	models.FormatHSL:  {"hsl", "hsla"},
	models.FormatHSV:  {"hsv", "hsva"},
	models.FormatCMYK: {"cmyk", ""},
	models.FormatLAB:  {"lab", ""},
}

// ValidateAny detects the format of input and validates it. The returned
// format is zero when detection fails.
func ValidateAny(input string) (models.Format, models.ValidationResult) {
	f, ok := notation.Detect(input)
	if !ok {
		return 0, models.Invalid(&models.FormatMismatchError{Input: input})
	}
	return f, Validate(input, f)
}

// Validate checks input against the grammar and ranges of format f.
func Validate(input string, f models.Format) models.ValidationResult {
	s := notation.Sanitize(input)
	if s == "" {
		return models.Invalid(&models.FormatMismatchError{Input: input, Want: f})
	}

	var err error
	switch f {
	case models.FormatHex:
		err = validateHex(input, s)
	case models.FormatRGB, models.FormatHSL, models.FormatHSV, models.FormatCMYK, models.FormatLAB:
		err = validateFunctional(input, s, f)
	default:
		err = &models.FormatMismatchError{Input: input, Want: f}
	}
	if err != nil {
		return models.Invalid(err)
	}
	return models.Valid()
}

func validateHex(input, s string) error {
	if !strings.HasPrefix(s, "#") {
		return &models.FormatMismatchError{Input: input, Want: models.FormatHex}
	}
	digits := s[1:]
	if !hexDigitsPattern.MatchString(digits) {
		return &models.ParseError{Token: digits, Err: ErrNotHexDigit}
	}
	switch len(digits) {
	case 3, 6, 8:
		return nil
	default:
		return &models.ArityError{Format: models.FormatHex, Want: 6, Got: len(digits)}
	}
}

func validateFunctional(input, s string, f models.Format) error {
	match := functionalPattern.FindStringSubmatch(s)
	if match == nil {
		return &models.FormatMismatchError{Input: input, Want: f}
	}

	name := strings.ToLower(match[1])
	names := functionalNames[f]
	withAlpha := names[1] != "" && name == names[1]
	if name != names[0] && !withAlpha {
		return &models.FormatMismatchError{Input: input, Want: f}
	}

	components := f.Components()
	want := len(components)
	if f.HasAlpha() && !withAlpha {
		want--
	}

	var args []string
	if strings.TrimSpace(match[2]) != "" {
		args = strings.Split(match[2], ",")
	}
	if len(args) != want {
		return &models.ArityError{Format: f, Want: want, Got: len(args)}
	}

	for i, arg := range args {
		if err := validateComponent(strings.TrimSpace(arg), components[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateComponent(token string, c models.Component) error {
	text := token
	if c.Percent {
		if !strings.HasSuffix(text, "%") {
			return &models.ParseError{Token: token, Err: ErrMissingPercent}
		}
		text = strings.TrimSpace(strings.TrimSuffix(text, "%"))
	} else if strings.HasSuffix(text, "%") {
		return &models.ParseError{Token: token, Err: ErrUnexpectedPercent}
	}

	if c.Integer && !integerPattern.MatchString(text) {
		return &models.ParseError{Token: token, Err: ErrNotInteger}
	}
	if !decimalPattern.MatchString(text) {
		return &models.ParseError{Token: token, Err: ErrNotNumber}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &models.ParseError{Token: token, Err: err}
	}
	return c.Check(v)
}
