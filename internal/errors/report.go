package errors

import (
	"encoding/json"
	"errors"
)

// Report is the canonical structured diagnostic type for the kernel.
// All diagnostic builders return *Report, which can be wrapped as ReportError.
type Report struct {
	Schema  string         `json:"schema"`         // Always "pylattice.diagnostic/v1"
	Code    string         `json:"code"`           // Error code (TYC001, TYC005, etc.)
	Phase   string         `json:"phase"`          // Always "typecheck" for kernel diagnostics
	Message string         `json:"message"`        // Human-readable message
	Span    *Span          `json:"span,omitempty"` // Source location (optional)
	Data    map[string]any `json:"data,omitempty"` // Structured data (sorted keys)
	Fix     *Fix           `json:"fix,omitempty"`  // Suggested fix (optional)
}

// ReportError wraps a Report as an error
// This allows structured reports to survive errors.As() unwrapping
type ReportError struct {
	Rep *Report
}

// Error implements the error interface
func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport attempts to extract a Report from an error chain
// Returns the Report and true if found, nil and false otherwise
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as a ReportError
// Call sites should return errors.WrapReport(report) to preserve structure
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON converts a Report to JSON (deterministic: fields in declaration order, Data keys sorted)
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error

	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}

	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewGeneric creates a generic diagnostic report from a Go error, used at
// recovery boundaries where no specific TYC code applies.
func NewGeneric(phase string, err error) *Report {
	return &Report{
		Schema:  "pylattice.diagnostic/v1",
		Code:    "TYC000",
		Phase:   phase,
		Message: err.Error(),
		Data:    map[string]any{},
	}
}
