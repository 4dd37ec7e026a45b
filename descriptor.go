package shapecheck

import "strings"

// Kind discriminates the Descriptor variants.
type Kind int

const (
	KindInvalid Kind = iota // zero value; rejected at first use
	KindBool
	KindInt
	KindFloat
	KindString
	KindNone
	KindAny
	KindRecord
	KindUnion
	KindSequence
	KindMapping
	KindTuple
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindNone:
		return "none"
	case KindAny:
		return "any"
	case KindRecord:
		return "record"
	case KindUnion:
		return "union"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindTuple:
		return "tuple"
	case KindLiteral:
		return "literal"
	default:
		return "invalid"
	}
}

// Field declares one named Record entry.
type Field struct {
	Name     string
	Desc     *Descriptor
	Required bool
}

// F declares a required Record field.
func F(name string, d *Descriptor) Field { return Field{Name: name, Desc: d, Required: true} }

// Opt declares an optional Record field: it may be absent, but when present
// its value must still match d.
func Opt(name string, d *Descriptor) Field { return Field{Name: name, Desc: d, Required: false} }

// Descriptor is an immutable tree describing an expected value shape. Build it
// once via the constructors below and share it freely; the matcher only reads.
type Descriptor struct {
	kind   Kind
	fields []Field       // Record
	alts   []*Descriptor // Union
	elem   *Descriptor   // Sequence
	key    *Descriptor   // Mapping
	value  *Descriptor   // Mapping
	elems  []*Descriptor // Tuple
	lits   []any         // Literal
}

// Shared primitive singletons; descriptors are immutable so reuse is safe.
var (
	boolDesc   = &Descriptor{kind: KindBool}
	intDesc    = &Descriptor{kind: KindInt}
	floatDesc  = &Descriptor{kind: KindFloat}
	stringDesc = &Descriptor{kind: KindString}
	noneDesc   = &Descriptor{kind: KindNone}
	anyDesc    = &Descriptor{kind: KindAny}
)

// Bool matches a boolean scalar.
func Bool() *Descriptor { return boolDesc }

// Int matches an integral numeric value. Decoded JSON surfaces numbers as
// float64, so a float with a zero fractional part satisfies Int; a float with
// a fractional part does not.
func Int() *Descriptor { return intDesc }

// Float matches any numeric value; integers count as valid floats.
func Float() *Descriptor { return floatDesc }

// String matches a string scalar.
func String() *Descriptor { return stringDesc }

// None matches only the null/nil value.
func None() *Descriptor { return noneDesc }

// Any matches every value.
func Any() *Descriptor { return anyDesc }

// Record matches a dict-like value with the given named fields. Required
// fields must be present and match; optional fields may be absent. Keys in
// the value that are not declared here are ignored. Panics with
// *InvalidDescriptorError on duplicate field names or nil field descriptors.
func Record(fields ...Field) *Descriptor {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Desc == nil {
			panic(invalidDescriptor("record field %q has nil descriptor", f.Name))
		}
		if _, dup := seen[f.Name]; dup {
			panic(invalidDescriptor("record declares field %q twice", f.Name))
		}
		seen[f.Name] = struct{}{}
	}
	return &Descriptor{kind: KindRecord, fields: append([]Field(nil), fields...)}
}

// Union matches a value that matches at least one alternative, tried in
// declaration order. Panics with *InvalidDescriptorError when no alternative
// is given or any alternative is nil.
func Union(alts ...*Descriptor) *Descriptor {
	if len(alts) == 0 {
		panic(invalidDescriptor("union must declare at least one alternative"))
	}
	for i, a := range alts {
		if a == nil {
			panic(invalidDescriptor("union alternative %d is nil", i))
		}
	}
	return &Descriptor{kind: KindUnion, alts: append([]*Descriptor(nil), alts...)}
}

// Optional is sugar for Union(d, None()): a standalone value that is either d
// or null. Distinct from a Record field's own required flag.
func Optional(d *Descriptor) *Descriptor { return Union(d, noneDesc) }

// SequenceOf matches an ordered collection whose every element matches elem.
func SequenceOf(elem *Descriptor) *Descriptor {
	if elem == nil {
		panic(invalidDescriptor("sequence element descriptor is nil"))
	}
	return &Descriptor{kind: KindSequence, elem: elem}
}

// MappingOf matches a key-value collection whose every key matches key and
// every value matches value.
func MappingOf(key, value *Descriptor) *Descriptor {
	if key == nil || value == nil {
		panic(invalidDescriptor("mapping key/value descriptor is nil"))
	}
	return &Descriptor{kind: KindMapping, key: key, value: value}
}

// LiteralOf matches a scalar value equal to one of the enumerated constants.
// Values may be strings, booleans, numbers or nil; numbers compare by value,
// so a decoded float64(200) equals the literal 200. Panics with
// *InvalidDescriptorError when no value is given or a value is not a scalar.
func LiteralOf(values ...any) *Descriptor {
	if len(values) == 0 {
		panic(invalidDescriptor("literal must declare at least one value"))
	}
	for i, v := range values {
		if !scalarLiteral(v) {
			panic(invalidDescriptor("literal value %d is not a scalar", i))
		}
	}
	return &Descriptor{kind: KindLiteral, lits: append([]any(nil), values...)}
}

// TupleOf matches an ordered collection of exactly len(elems) elements where
// position i must match elems[i].
func TupleOf(elems ...*Descriptor) *Descriptor {
	for i, e := range elems {
		if e == nil {
			panic(invalidDescriptor("tuple element %d is nil", i))
		}
	}
	return &Descriptor{kind: KindTuple, elems: append([]*Descriptor(nil), elems...)}
}

// Kind reports the descriptor variant.
func (d *Descriptor) Kind() Kind { return d.kind }

// Fields returns the declared Record fields in declaration order.
func (d *Descriptor) Fields() []Field { return d.fields }

// Alternatives returns the Union alternatives in declaration order.
func (d *Descriptor) Alternatives() []*Descriptor { return d.alts }

// Elem returns the Sequence element descriptor.
func (d *Descriptor) Elem() *Descriptor { return d.elem }

// Key returns the Mapping key descriptor.
func (d *Descriptor) Key() *Descriptor { return d.key }

// Value returns the Mapping value descriptor.
func (d *Descriptor) Value() *Descriptor { return d.value }

// Elems returns the Tuple element descriptors in positional order.
func (d *Descriptor) Elems() []*Descriptor { return d.elems }

// Literals returns the Literal values in declaration order.
func (d *Descriptor) Literals() []any { return d.lits }

// String renders a readable type expression, e.g.
// record{name: string, age: integer} or union[integer|none].
func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	switch d.kind {
	case KindRecord:
		b := &strings.Builder{}
		b.WriteString("record{")
		for i, f := range d.fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			if !f.Required {
				b.WriteString("?")
			}
			b.WriteString(": ")
			b.WriteString(f.Desc.String())
		}
		b.WriteString("}")
		return b.String()
	case KindUnion:
		names := make([]string, len(d.alts))
		for i, a := range d.alts {
			names[i] = a.String()
		}
		return "union[" + strings.Join(names, "|") + "]"
	case KindSequence:
		return "sequence[" + d.elem.String() + "]"
	case KindMapping:
		return "mapping[" + d.key.String() + ", " + d.value.String() + "]"
	case KindTuple:
		names := make([]string, len(d.elems))
		for i, e := range d.elems {
			names[i] = e.String()
		}
		return "tuple[" + strings.Join(names, ", ") + "]"
	case KindLiteral:
		names := make([]string, len(d.lits))
		for i, v := range d.lits {
			names[i] = renderLiteral(v)
		}
		return "literal[" + strings.Join(names, "|") + "]"
	default:
		return d.kind.String()
	}
}

// check defends against hand-assembled descriptors that bypassed the
// constructors. Constructor-built trees always pass.
func (d *Descriptor) check() *InvalidDescriptorError {
	if d == nil {
		return invalidDescriptor("nil descriptor")
	}
	switch d.kind {
	case KindBool, KindInt, KindFloat, KindString, KindNone, KindAny:
		return nil
	case KindRecord:
		seen := make(map[string]struct{}, len(d.fields))
		for _, f := range d.fields {
			if f.Desc == nil {
				return invalidDescriptor("record field %q has nil descriptor", f.Name)
			}
			if _, dup := seen[f.Name]; dup {
				return invalidDescriptor("record declares field %q twice", f.Name)
			}
			seen[f.Name] = struct{}{}
		}
		return nil
	case KindUnion:
		if len(d.alts) == 0 {
			return invalidDescriptor("union must declare at least one alternative")
		}
		return nil
	case KindSequence:
		if d.elem == nil {
			return invalidDescriptor("sequence element descriptor is nil")
		}
		return nil
	case KindMapping:
		if d.key == nil || d.value == nil {
			return invalidDescriptor("mapping key/value descriptor is nil")
		}
		return nil
	case KindTuple:
		for i, e := range d.elems {
			if e == nil {
				return invalidDescriptor("tuple element %d is nil", i)
			}
		}
		return nil
	case KindLiteral:
		if len(d.lits) == 0 {
			return invalidDescriptor("literal must declare at least one value")
		}
		for i, v := range d.lits {
			if !scalarLiteral(v) {
				return invalidDescriptor("literal value %d is not a scalar", i)
			}
		}
		return nil
	default:
		return invalidDescriptor("unknown kind %d", int(d.kind))
	}
}
