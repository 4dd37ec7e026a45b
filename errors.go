package shapecheck

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingKey     = "missing_key"     // required Record field absent from the value
	CodeTypeMismatch   = "type_mismatch"   // runtime kind differs from the expected kind
	CodeUnionMismatch  = "union_mismatch"  // value matched none of a Union's alternatives
	CodeLengthMismatch = "length_mismatch" // Tuple arity differs from the value's length
	CodeDepthExceeded  = "depth_exceeded"  // recursion limit reached while matching
)

// Issue represents a single validation entry.
type Issue struct {
	Path     string // JSON Pointer (for example: /interests/2).
	Code     string // One of the codes listed above.
	Message  string
	Hint     string // Optional: remediation hints, e.g. the expected shape.
	Expected string // Rendered descriptor the value was checked against.
	Actual   string // Runtime kind name of the offending value.
	// Params carries structured parameters (e.g., {"expected":2, "actual":3})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. type_mismatch at /interests/2 (expected string, got integer)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Expected != "" || it.Actual != "" {
			fmt.Fprintf(b, " (expected %s, got %s)", it.Expected, it.Actual)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// InvalidDescriptorError reports a malformed Descriptor: an empty Union,
// duplicate Record field names, or a nil child. It indicates misuse by the
// caller, never bad input data, so it is kept distinct from Issues and is not
// silenced by Is.
type InvalidDescriptorError struct {
	Reason string
}

func (e *InvalidDescriptorError) Error() string {
	return "shapecheck: invalid descriptor: " + e.Reason
}

func invalidDescriptor(format string, args ...any) *InvalidDescriptorError {
	return &InvalidDescriptorError{Reason: fmt.Sprintf(format, args...)}
}
