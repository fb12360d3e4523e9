// Package errors provides centralized error code definitions for the kernel.
// All error codes follow a consistent taxonomy for structured reporting.
package errors

// Error code constants for the diagnostic kinds the kernel raises, all
// under the TYC (type-checker) namespace.
const (
	// TYC001 indicates a call on a type that is not callable at all.
	TYC001 = "TYC001"

	// TYC002 indicates a call where a single arm of a union is not callable.
	TYC002 = "TYC002"

	// TYC003 indicates a call where multiple arms of a union are not callable.
	TYC003 = "TYC003"

	// TYC004 is not an error but a reveal_type() report of an inferred type.
	TYC004 = "TYC004"

	// TYC005 indicates a type that is not iterable (no __iter__/__getitem__ chain).
	TYC005 = "TYC005"

	// TYC006 indicates pairwise non-equivalent declarations for one symbol.
	TYC006 = "TYC006"

	// TYC007 indicates a class possibility has no valid C3 linearization.
	TYC007 = "TYC007"
)

// ErrorInfo provides structured information about an error code.
type ErrorInfo struct {
	Code        string
	Phase       string
	Category    string
	Description string
}

// ErrorRegistry maps error codes to their information.
var ErrorRegistry = map[string]ErrorInfo{
	TYC001: {TYC001, "typecheck", "call", "Object is not callable"},
	TYC002: {TYC002, "typecheck", "call", "Union arm is not callable"},
	TYC003: {TYC003, "typecheck", "call", "All union arms are not callable"},
	TYC004: {TYC004, "typecheck", "diagnostic", "Revealed type"},
	TYC005: {TYC005, "typecheck", "iteration", "Object is not iterable"},
	TYC006: {TYC006, "typecheck", "declaration", "Conflicting declarations"},
	TYC007: {TYC007, "typecheck", "mro", "No valid method resolution order"},
}

// GetErrorInfo returns information about an error code.
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, exists := ErrorRegistry[code]
	return info, exists
}

// IsTypeError reports whether code belongs to the typecheck phase.
func IsTypeError(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && info.Phase == "typecheck"
}
