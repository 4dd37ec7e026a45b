package shapecheck

import "errors"

// DefaultMaxDepth bounds recursion when no ValidateOpt overrides it. Depth
// equals the nesting depth of the descriptor/value pair; exceeding the bound
// yields a regular depth_exceeded issue instead of exhausting the stack.
const DefaultMaxDepth = 64

// ValidateOpt bundles validation options.
type ValidateOpt struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Validate checks v against d and returns nil on a structural match.
//
// On mismatch it returns Issues whose single entry carries the JSON Pointer
// path of the offending datum plus the expected and actual kinds; inspect it
// via AsIssues. A malformed root descriptor returns *InvalidDescriptorError
// instead (never Issues), so programmer error stays distinguishable from bad
// input data. When several opts are given the last one wins.
func Validate(v any, d *Descriptor, opts ...ValidateOpt) error {
	if err := d.check(); err != nil {
		return err
	}
	var opt ValidateOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	maxDepth := opt.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if iss := matchValue(v, d, rootPath(), 0, maxDepth); iss != nil {
		return Issues{*iss}
	}
	return nil
}

// Is reports whether v conforms to d, discarding the diagnostic. This is the
// silent form of Validate: every data-validation failure becomes false. A
// malformed descriptor still panics with *InvalidDescriptorError; misuse by
// the caller must not be silenced.
func Is(v any, d *Descriptor, opts ...ValidateOpt) bool {
	err := Validate(v, d, opts...)
	if err == nil {
		return true
	}
	var ide *InvalidDescriptorError
	if errors.As(err, &ide) {
		panic(ide)
	}
	return false
}
