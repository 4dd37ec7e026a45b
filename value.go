package shapecheck

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// valueKind classifies the dynamic shape of a decoded value. It is coarser
// than Kind: numbers are split into integral and fractional so the matcher
// can apply the integer/float asymmetry in one place.
type valueKind int

const (
	vkNone valueKind = iota
	vkBool
	vkIntegral // Go integer kinds, integral floats, integer json.Number
	vkFraction // numeric with a non-zero fractional part (or NaN/Inf)
	vkString
	vkSequence
	vkMapping
	vkOther // anything the decoders never produce; matches only Any
)

func kindOf(v any) valueKind {
	switch t := v.(type) {
	case nil:
		return vkNone
	case bool:
		return vkBool
	case string:
		return vkString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return vkIntegral
	case float64:
		return floatKind(t)
	case float32:
		return floatKind(float64(t))
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return vkIntegral
		}
		if f, err := t.Float64(); err == nil {
			return floatKind(f)
		}
		return vkOther
	case []any:
		return vkSequence
	case map[string]any, map[any]any:
		return vkMapping
	default:
		return vkOther
	}
}

// floatKind applies the boundary rule: JSON decoders surface every number as
// float64, so an integral float still satisfies an integer descriptor.
func floatKind(f float64) valueKind {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return vkFraction
	}
	if math.Trunc(f) == f {
		return vkIntegral
	}
	return vkFraction
}

// kindName renders the runtime kind of v for diagnostics (the actualKind of
// an Issue).
func kindName(v any) string {
	switch kindOf(v) {
	case vkNone:
		return "none"
	case vkBool:
		return "boolean"
	case vkIntegral:
		return "integer"
	case vkFraction:
		return "float"
	case vkString:
		return "string"
	case vkSequence:
		return "sequence"
	case vkMapping:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// pair is one mapping entry, with the key rendered for path building.
type pair struct {
	key     any
	keyName string
	val     any
}

// pairsOf flattens a decoded mapping into key-sorted pairs. Go maps do not
// preserve insertion order, so ascending key order keeps diagnostics
// reproducible across runs.
func pairsOf(v any) ([]pair, bool) {
	switch m := v.(type) {
	case map[string]any:
		out := make([]pair, 0, len(m))
		for k, val := range m {
			out = append(out, pair{key: k, keyName: k, val: val})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].keyName < out[j].keyName })
		return out, true
	case map[any]any:
		// yaml.v3 output for non-string keys
		out := make([]pair, 0, len(m))
		for k, val := range m {
			out = append(out, pair{key: k, keyName: renderKey(k), val: val})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].keyName < out[j].keyName })
		return out, true
	default:
		return nil, false
	}
}

func renderKey(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}

// recordEntries exposes a decoded value as a string-keyed record, or reports
// that it is not record-shaped. Older YAML decoders emit map[any]any even for
// string-keyed documents, so that dialect counts as record-shaped too as long
// as every key is a string.
func recordEntries(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// scalarLiteral reports whether v may serve as a Literal value: strings,
// booleans, numbers and nil, the kinds with well-defined equality.
func scalarLiteral(v any) bool {
	switch kindOf(v) {
	case vkNone, vkBool, vkIntegral, vkFraction, vkString:
		return true
	default:
		return false
	}
}

// numericValue converts any numeric representation to float64 for literal
// comparison.
func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case uintptr:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// literalEquals compares a runtime value against a literal constant. Numbers
// compare by value regardless of representation, so float64(200) from a JSON
// decoder equals the literal int 200; other scalars require the same kind.
func literalEquals(v, lit any) bool {
	if nv, ok := numericValue(v); ok {
		nl, ok := numericValue(lit)
		return ok && nv == nl
	}
	switch t := v.(type) {
	case nil:
		return lit == nil
	case bool:
		b, ok := lit.(bool)
		return ok && t == b
	case string:
		s, ok := lit.(string)
		return ok && t == s
	default:
		return false
	}
}

func renderLiteral(v any) string {
	switch t := v.(type) {
	case nil:
		return "none"
	case string:
		return strconv.Quote(t)
	default:
		return fmt.Sprint(t)
	}
}
