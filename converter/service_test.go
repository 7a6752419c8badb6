package converter

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/color-game/colorimetry/models"
)

func TestRepresentPrimaries(t *testing.T) {
	t.Parallel()

	type strings6 struct {
		Hex, RGB, HSL, HSV, CMYK, LAB string
	}

	tests := []struct {
		input string
		want  strings6
	}{
		{"rgb(255,0,0)", strings6{"#FF0000", "rgb(255,0,0)", "hsl(0,100%,50%)", "hsv(0,100%,100%)", "cmyk(0%,100%,100%,0%)", "lab(53.2,80.1,67.2)"}},
		{"rgb(0,255,0)", strings6{"#00FF00", "rgb(0,255,0)", "hsl(120,100%,50%)", "hsv(120,100%,100%)", "cmyk(100%,0%,100%,0%)", "lab(87.7,-86.2,83.2)"}},
		{"rgb(0,0,255)", strings6{"#0000FF", "rgb(0,0,255)", "hsl(240,100%,50%)", "hsv(240,100%,100%)", "cmyk(100%,100%,0%,0%)", "lab(32.3,79.2,-107.9)"}},
		{"#000", strings6{"#000000", "rgb(0,0,0)", "hsl(0,0%,0%)", "hsv(0,0%,0%)", "cmyk(0%,0%,0%,100%)", "lab(0.0,0.0,0.0)"}},
		{"#FFF", strings6{"#FFFFFF", "rgb(255,255,255)", "hsl(0,0%,100%)", "hsv(0,0%,100%)", "cmyk(0%,0%,0%,0%)", "lab(100.0,0.0,0.0)"}},
		{"rgb(128,128,128)", strings6{"#808080", "rgb(128,128,128)", "hsl(0,0%,50%)", "hsv(0,0%,50%)", "cmyk(0%,0%,0%,50%)", "lab(53.6,0.0,0.0)"}},
	}

	svc := NewService()
	for _, tt := range tests {
		rep, err := svc.Represent(tt.input)
		if err != nil {
			t.Fatalf("Represent(%q) returned error: %v", tt.input, err)
		}
		got := strings6{rep.HexString(), rep.RGBString(), rep.HSLString(), rep.HSVString(), rep.CMYKString(), rep.LABString()}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Represent(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestRepresentIsConsistent(t *testing.T) {
	t.Parallel()

	rep := Represent(models.NewHSLA(200, 60, 40, 0.5))
	rgb := rep.RGB()
	if rep.RGBString() != "rgba(41,122,163,0.50)" {
		t.Errorf("RGBString() = %q", rep.RGBString())
	}
	if rep.HexString() != "#297AA380" {
		t.Errorf("HexString() = %q", rep.HexString())
	}
	if rep.HSL().Alpha() != rgb.Alpha() || rep.HSV().Alpha() != rgb.Alpha() {
		t.Errorf("alpha not carried: hsl %v, hsv %v, rgb %v", rep.HSL().Alpha(), rep.HSV().Alpha(), rgb.Alpha())
	}
	for _, f := range models.Formats {
		if rep.String(f) == "" {
			t.Errorf("String(%v) is empty", f)
		}
	}
	if rep.String(models.Format(0)) != "" {
		t.Error("String(invalid) is not empty")
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	svc := NewService()
	tests := []struct {
		input  string
		target models.Format
		want   string
	}{
		{"#F0A", models.FormatRGB, "rgb(255,0,170)"},
		{"#FF804080", models.FormatRGB, "rgba(255,128,64,0.50)"},
		{"rgba(255,128,64,0.50)", models.FormatHex, "#FF804080"},
		{"hsl(0,100%,50%)", models.FormatCMYK, "cmyk(0%,100%,100%,0%)"},
		{"cmyk(0%,0%,0%,100%)", models.FormatHex, "#000000"},
		{"lab(100,0,0)", models.FormatHSV, "hsv(0,0%,100%)"},
	}
	for _, tt := range tests {
		got, err := svc.Convert(tt.input, tt.target)
		if err != nil {
			t.Fatalf("Convert(%q, %v) returned error: %v", tt.input, tt.target, err)
		}
		if got != tt.want {
			t.Errorf("Convert(%q, %v) = %q, want %q", tt.input, tt.target, got, tt.want)
		}
	}
}

func TestStrictAndLenientModes(t *testing.T) {
	t.Parallel()

	strict := NewService()
	_, err := strict.Convert("rgb(256,0,0)", models.FormatHex)
	if !errors.Is(err, models.ErrRangeViolation) {
		t.Fatalf("strict Convert error = %v, want range violation", err)
	}
	var pipeErr *PipelineError
	if !errors.As(err, &pipeErr) || pipeErr.Stage != StageValidate {
		t.Fatalf("strict Convert error = %#v, want validate stage", err)
	}

	lenient := NewService(WithMode(ModeLenient))
	got, err := lenient.Convert("rgb(256,0,0)", models.FormatHex)
	if err != nil {
		t.Fatalf("lenient Convert returned error: %v", err)
	}
	if got != "#FF0000" {
		t.Errorf("lenient Convert = %q, want #FF0000", got)
	}
}

func TestPipelineFailures(t *testing.T) {
	t.Parallel()

	svc := NewService(WithMode(ModeLenient))
	tests := []struct {
		input  string
		target models.Format
		stage  Stage
		want   error
	}{
		{"not a color", models.FormatRGB, StageDetect, models.ErrFormatMismatch},
		{"rgb(1,2)", models.FormatHex, StageParse, models.ErrArity},
		{"hsl(x,1%,1%)", models.FormatHex, StageParse, models.ErrParseFailure},
		{"#FFF", models.Format(42), StageConvert, models.ErrFormatMismatch},
	}
	for _, tt := range tests {
		_, err := svc.Convert(tt.input, tt.target)
		var pipeErr *PipelineError
		if !errors.As(err, &pipeErr) {
			t.Fatalf("Convert(%q) error = %v, want PipelineError", tt.input, err)
		}
		if pipeErr.Stage != tt.stage || !errors.Is(err, tt.want) {
			t.Errorf("Convert(%q) error = %v (stage %s), want %v at %s", tt.input, err, pipeErr.Stage, tt.want, tt.stage)
		}
	}
}

func TestLastError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	svc := NewService(WithLogger(log.New(&buf, "", 0)))

	if _, err := svc.Represent("rgb(999,0,0)"); err == nil {
		t.Fatal("Represent(rgb(999,0,0)) returned nil error")
	}
	if svc.LastError() == nil {
		t.Fatal("LastError() is nil after a failure")
	}
	if !strings.Contains(buf.String(), "red 999 is out of range") {
		t.Errorf("log output %q does not mention the failure", buf.String())
	}

	if _, err := svc.Represent("rgb(9,0,0)"); err != nil {
		t.Fatalf("Represent returned error: %v", err)
	}
	if err := svc.LastError(); err != nil {
		t.Errorf("LastError() = %v after a success, want nil", err)
	}
}

func TestValidateRecordsResult(t *testing.T) {
	t.Parallel()

	svc := NewService(WithMode(ModeLenient))
	f, res := svc.Validate("cmyk(101%,0%,0%,0%)")
	if f != models.FormatCMYK || res.Valid() {
		t.Fatalf("Validate = (%v, valid=%v)", f, res.Valid())
	}
	if svc.LastError() == nil {
		t.Error("LastError() is nil after invalid input")
	}
}

func TestRepresentNamed(t *testing.T) {
	t.Parallel()

	svc := NewService()
	rep, err := svc.RepresentNamed("Tomato")
	if err != nil {
		t.Fatalf("RepresentNamed returned error: %v", err)
	}
	if rep.HexString() != "#FF6347" {
		t.Errorf("RepresentNamed(Tomato) hex = %q", rep.HexString())
	}
	resp := rep.Response()
	if resp.Name.Value != "tomato" || !resp.Name.ExactMatchName {
		t.Errorf("Response().Name = %+v", resp.Name)
	}

	if _, err := svc.RepresentNamed("unobtainium"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("RepresentNamed(unobtainium) error = %v", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	svc := NewService()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := "rgb(10,20,30)"
			if i%2 == 1 {
				input = "rgb(300,0,0)"
			}
			_, err := svc.Convert(input, models.FormatHex)
			if (err != nil) != (i%2 == 1) {
				t.Errorf("Convert(%q) error = %v", input, err)
			}
		}(i)
	}
	wg.Wait()
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Mode{"": ModeStrict, "Strict": ModeStrict, "lenient": ModeLenient, "clamp": ModeLenient} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = (%v, %v), want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("loose"); err == nil {
		t.Error("ParseMode(loose) returned nil error")
	}
}

func TestRepresentColorRejectsNil(t *testing.T) {
	t.Parallel()

	svc := NewService()
	_, err := svc.RepresentColor(nil)
	var pipeErr *PipelineError
	if !errors.As(err, &pipeErr) || pipeErr.Stage != StageConvert || !errors.Is(err, models.ErrFormatMismatch) {
		t.Fatalf("RepresentColor(nil) error = %v, want format mismatch at convert", err)
	}
	if svc.LastError() == nil {
		t.Error("LastError() is nil after RepresentColor(nil)")
	}

	rep, err := svc.RepresentColor(models.NewCMYK(0, 100, 100, 0))
	if err != nil || rep.HexString() != "#FF0000" {
		t.Errorf("RepresentColor(cmyk red) = (%q, %v)", rep.HexString(), err)
	}
}

func TestRepresentComponents(t *testing.T) {
	t.Parallel()

	strict := NewService()
	lenient := NewService(WithMode(ModeLenient))

	tests := []struct {
		name      string
		svc       *Service
		format    models.Format
		values    []float64
		wantHex   string
		wantErr   error
		wantStage Stage
	}{
		{"hsl red", strict, models.FormatHSL, []float64{0, 100, 50}, "#FF0000", nil, ""},
		{"hex as rgb with alpha", strict, models.FormatHex, []float64{255, 0, 170, 0.5}, "#FF00AA80", nil, ""},
		{"strict range", strict, models.FormatRGB, []float64{300, 0, 0}, "", models.ErrRangeViolation, StageValidate},
		{"strict fraction", strict, models.FormatRGB, []float64{0.5, 0, 0}, "", models.ErrParseFailure, StageParse},
		{"arity", strict, models.FormatCMYK, []float64{0, 0}, "", models.ErrArity, StageParse},
		{"lenient clamps", lenient, models.FormatRGB, []float64{300, -4, 0}, "#FF0000", nil, ""},
		{"lenient arity", lenient, models.FormatLAB, []float64{50}, "", models.ErrArity, StageParse},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rep, err := tt.svc.RepresentComponents(tt.format, tt.values)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("RepresentComponents returned error: %v", err)
				}
				if rep.HexString() != tt.wantHex {
					t.Errorf("hex = %q, want %q", rep.HexString(), tt.wantHex)
				}
				return
			}
			var pipeErr *PipelineError
			if !errors.As(err, &pipeErr) || !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if pipeErr.Stage != tt.wantStage {
				t.Errorf("Stage = %q, want %q", pipeErr.Stage, tt.wantStage)
			}
		})
	}
}
