// Package errors provides structured diagnostic encoding for the kernel.
package errors

import (
	"encoding/json"
	"fmt"
)

// SchemaV1 is the schema tag stamped on every encoded diagnostic.
const SchemaV1 = "pylattice.diagnostic/v1"

// Fix represents a suggested fix with a confidence score.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// Encoded represents a structured diagnostic in JSON form. It is the wire
// shape `check_types` hands back to the driver for one reported
// diagnostic.
type Encoded struct {
	Schema     string      `json:"schema"`
	SID        string      `json:"sid"`
	Phase      string      `json:"phase"`
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Fix        Fix         `json:"fix"`
	Context    interface{} `json:"context,omitempty"`
	SourceSpan string      `json:"source_span,omitempty"`
	Meta       interface{} `json:"meta,omitempty"`
}

// NewTypecheck creates a kernel diagnostic for one of the TYC codes.
func NewTypecheck(sid, code, msg string, ctx interface{}) Encoded {
	if sid == "" {
		sid = "unknown"
	}
	return Encoded{
		Schema:  SchemaV1,
		SID:     sid,
		Phase:   "typecheck",
		Code:    code,
		Message: msg,
		Fix:     Fix{Suggestion: "", Confidence: 0.0},
		Context: ctx,
	}
}

// WithFix adds a fix suggestion to the diagnostic.
func (e Encoded) WithFix(suggestion string, confidence float64) Encoded {
	e.Fix = Fix{Suggestion: suggestion, Confidence: confidence}
	return e
}

// WithSourceSpan adds a source location to the diagnostic.
func (e Encoded) WithSourceSpan(span string) Encoded {
	e.SourceSpan = span
	return e
}

// WithMeta adds metadata to the diagnostic.
func (e Encoded) WithMeta(meta interface{}) Encoded {
	e.Meta = meta
	return e
}

// ToJSON converts the diagnostic to JSON. encoding/json already sorts map
// keys, which is what gives the output its deterministic byte-for-byte shape
// across runs.
func (e Encoded) ToJSON() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		fallback := Encoded{
			Schema:  SchemaV1,
			Message: "encoding failed",
			Meta:    map[string]string{"original_error": err.Error()},
		}
		return json.Marshal(fallback)
	}
	return data, nil
}

// ErrorContext provides structured context for a diagnostic: the narrowing
// constraints and declaration conflicts that led to it.
type ErrorContext struct {
	Constraints []string          `json:"constraints,omitempty"`
	Decisions   []string          `json:"decisions,omitempty"`
	Environment map[string]string `json:"environment,omitempty"`
}

// SafeEncodeError safely encodes any error as a diagnostic; never panics.
func SafeEncodeError(err error, phase string) []byte {
	if err == nil {
		return nil
	}

	encoded := Encoded{
		Schema:  SchemaV1,
		SID:     "unknown",
		Phase:   phase,
		Code:    "TYC000",
		Message: err.Error(),
		Fix:     Fix{Suggestion: "", Confidence: 0.0},
	}

	data, _ := encoded.ToJSON()
	return data
}

// FormatSourceSpan formats a file position as "file:line:col".
func FormatSourceSpan(file string, line, col int) string {
	return fmt.Sprintf("%s:%d:%d", file, line, col)
}
