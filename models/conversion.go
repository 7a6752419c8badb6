package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversion is one recorded conversion request
type Conversion struct {
	ID           string    `json:"id" db:"id"`
	Input        string    `json:"input" db:"input"`
	SourceFormat string    `json:"sourceFormat" db:"source_format"`
	TargetFormat string    `json:"targetFormat" db:"target_format"`
	Output       string    `json:"output" db:"output"`
	Succeeded    bool      `json:"succeeded" db:"succeeded"`
	Error        string    `json:"error,omitempty" db:"error"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// NewConversion builds a record for input. source and target may be zero
// when detection failed or the whole representation was requested.
func NewConversion(input string, source, target Format, output string, convErr error) Conversion {
	conversion := Conversion{
		ID:        uuid.New().String(),
		Input:     input,
		Output:    output,
		Succeeded: convErr == nil,
		CreatedAt: time.Now(),
	}
	if source.IsValid() {
		conversion.SourceFormat = source.String()
	}
	if target.IsValid() {
		conversion.TargetFormat = target.String()
	} else {
		conversion.TargetFormat = "all"
	}
	if convErr != nil {
		conversion.Error = convErr.Error()
	}
	return conversion
}
