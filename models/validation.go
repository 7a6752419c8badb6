package models

// ValidationResult is either valid or invalid with a reason.
// The zero value is valid.
type ValidationResult struct {
	err error
}

// Valid returns the valid result.
func Valid() ValidationResult {
	return ValidationResult{}
}

// Invalid wraps the error describing why validation failed.
func Invalid(err error) ValidationResult {
	return ValidationResult{err: err}
}

func (v ValidationResult) Valid() bool { return v.err == nil }

// Reason is empty for valid results.
func (v ValidationResult) Reason() string {
	if v.err == nil {
		return ""
	}
	return v.err.Error()
}

// Err returns the underlying typed error, or nil.
func (v ValidationResult) Err() error { return v.err }
