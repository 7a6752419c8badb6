package main

import (
	"errors"
	"testing"

	"github.com/color-game/colorimetry/converter"
	"github.com/color-game/colorimetry/models"
)

func TestRunConvert(t *testing.T) {
	t.Parallel()

	svc := converter.NewService()
	tests := []struct {
		name   string
		input  string
		target string
		want   error
	}{
		{"single target", "#F0A", "rgb", nil},
		{"all formats", "hsv(200,50%,50%)", "", nil},
		{"bad target", "#F0A", "ycbcr", models.ErrFormatMismatch},
		{"bad input", "rgb(1,2,3,4,5)", "hex", models.ErrArity},
		{"out of range", "lab(120,0,0)", "", models.ErrRangeViolation},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := runConvert(svc, tt.input, tt.target)
			if tt.want == nil && err != nil {
				t.Fatalf("runConvert returned error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("runConvert error = %v, want %v", err, tt.want)
			}
		})
	}
}
