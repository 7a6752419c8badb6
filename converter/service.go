// Package converter ties parsing, validation and conversion together.
package converter

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"github.com/color-game/colorimetry/models"
	"github.com/color-game/colorimetry/notation"
	"github.com/color-game/colorimetry/validation"
)

var ErrUnknownName = errors.New("unknown color name")

// Mode selects how out-of-range components are treated.
type Mode int

const (
	// ModeStrict validates input before parsing and rejects out-of-range values.
	ModeStrict Mode = iota
	// ModeLenient skips validation; the parser clamps out-of-range values.
	ModeLenient
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLenient:
		return "lenient"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "strict" or "lenient" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return ModeStrict, nil
	case "lenient", "clamp":
		return ModeLenient, nil
	}
	return 0, fmt.Errorf("unknown conversion mode %q", s)
}

// Stage names the pipeline step that failed.
type Stage string

const (
	StageDetect   Stage = "detect"
	StageValidate Stage = "validate"
	StageParse    Stage = "parse"
	StageConvert  Stage = "convert"
)

// PipelineError wraps the error of the stage that stopped a conversion.
type PipelineError struct {
	Stage Stage
	Input string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Stage, e.Input, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

type Option func(*Service)

func WithMode(m Mode) Option {
	return func(s *Service) { s.mode = m }
}

// WithLogger makes the service log every failed conversion.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// Service runs the parse, validate, convert and format pipeline.
//
// Every method returns its own error. LastError is a convenience for
// callers that bind to the most recent outcome; it is safe for concurrent
// use but reflects whichever call finished last.
type Service struct {
	mode   Mode
	logger *log.Logger

	mu      sync.Mutex
	lastErr error
}

func NewService(opts ...Option) *Service {
	s := &Service{mode: ModeStrict}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Mode() Mode { return s.mode }

// LastError returns the error of the most recent call, or nil if it succeeded.
func (s *Service) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Validate checks input strictly regardless of the service mode.
func (s *Service) Validate(input string) (models.Format, models.ValidationResult) {
	f, res := validation.ValidateAny(input)
	if !res.Valid() {
		s.record(&PipelineError{Stage: StageValidate, Input: input, Err: res.Err()})
	} else {
		s.record(nil)
	}
	return f, res
}

// Parse detects, optionally validates, and parses input.
func (s *Service) Parse(input string) (models.Color, models.Format, error) {
	c, f, err := s.parse(input)
	s.record(err)
	return c, f, err
}

// Represent parses input and derives all six representations.
func (s *Service) Represent(input string) (ColorRepresentation, error) {
	c, _, err := s.parse(input)
	s.record(err)
	if err != nil {
		return ColorRepresentation{}, err
	}
	return Represent(c), nil
}

// Convert parses input and renders it in the target notation.
func (s *Service) Convert(input string, target models.Format) (string, error) {
	out, err := s.convert(input, target)
	s.record(err)
	return out, err
}

// RepresentColor derives all representations of an already built value.
// Only a nil color fails.
func (s *Service) RepresentColor(c models.Color) (ColorRepresentation, error) {
	if c == nil {
		err := &PipelineError{Stage: StageConvert, Err: fmt.Errorf("%w: nil color", models.ErrFormatMismatch)}
		s.record(err)
		return ColorRepresentation{}, err
	}
	s.record(nil)
	return Represent(c), nil
}

// RepresentNamed resolves a CSS color keyword and represents it.
func (s *Service) RepresentNamed(name string) (ColorRepresentation, error) {
	rgb, ok := notation.LookupName(name)
	if !ok {
		err := &PipelineError{Stage: StageParse, Input: name, Err: ErrUnknownName}
		s.record(err)
		return ColorRepresentation{}, err
	}
	s.record(nil)
	return Represent(rgb), nil
}

// RepresentComponents builds a color of format f from raw component values
// and represents it. Strict mode rejects out-of-range values; lenient mode
// clamps them.
func (s *Service) RepresentComponents(f models.Format, values []float64) (ColorRepresentation, error) {
	build := models.NewColor
	if s.mode == ModeStrict {
		build = models.StrictColor
	}
	c, err := build(f, values)
	if err != nil {
		stage := StageParse
		if errors.Is(err, models.ErrRangeViolation) {
			stage = StageValidate
		}
		err = &PipelineError{Stage: stage, Input: fmt.Sprintf("%s%v", f, values), Err: err}
		s.record(err)
		return ColorRepresentation{}, err
	}
	s.record(nil)
	return Represent(c), nil
}

func (s *Service) convert(input string, target models.Format) (string, error) {
	if !target.IsValid() {
		return "", &PipelineError{Stage: StageConvert, Input: input,
			Err: &models.FormatMismatchError{Input: input, Want: target}}
	}
	c, _, err := s.parse(input)
	if err != nil {
		return "", err
	}
	return Represent(c).String(target), nil
}

func (s *Service) parse(input string) (models.Color, models.Format, error) {
	f, ok := notation.Detect(input)
	if !ok {
		return nil, 0, &PipelineError{Stage: StageDetect, Input: input, Err: &models.FormatMismatchError{Input: input}}
	}

	if s.mode == ModeStrict {
		if res := validation.Validate(input, f); !res.Valid() {
			return nil, f, &PipelineError{Stage: StageValidate, Input: input, Err: res.Err()}
		}
	}

	c, _, err := notation.Parse(input)
	if err != nil {
		return nil, f, &PipelineError{Stage: StageParse, Input: input, Err: err}
	}
	return c, f, nil
}

func (s *Service) record(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()

	if err != nil && s.logger != nil {
		s.logger.Printf("color conversion failed: %v", err)
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func roundTenth(v float64) float64 {
	v = math.Round(v*10) / 10
	if v == 0 {
		return 0
	}
	return v
}
