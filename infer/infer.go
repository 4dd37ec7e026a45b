// Package infer derives shapecheck descriptors from Go struct types via
// reflection, playing the role the typing introspection of a schema
// declaration plays in dynamic languages: declare the expected record shape
// once as a struct, then validate decoded data against it.
package infer

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	shapecheck "github.com/SogoKato/shapecheck"
)

var jsonNumberType = reflect.TypeOf(json.Number(""))

// TypeOf derives a descriptor for the type parameter T. T is usually a struct
// type whose fields describe a record.
func TypeOf[T any]() (*shapecheck.Descriptor, error) {
	var zero T
	return Type(reflect.TypeOf(&zero).Elem())
}

// Type derives a descriptor for t:
//
//   - struct          -> Record; field keys follow the json tag ("-" skips the
//     field), a ",omitempty" tag marks the field optional
//   - pointer         -> Optional(elem), i.e. Union[elem, none]
//   - slice           -> Sequence
//   - map             -> Mapping
//   - [N]T array      -> Tuple of N elements
//   - bool/int*/uint* -> boolean / integer primitives
//   - float32/64      -> float (json.Number also maps to float)
//   - string          -> string
//   - interface{}     -> any
//
// Unsupported kinds (chan, func, complex, unsafe pointer) return an error, as
// do self-referential types (e.g. a linked list node): descriptors are finite
// trees, so a cycle in the type graph cannot be represented.
func Type(t reflect.Type) (*shapecheck.Descriptor, error) {
	return walk(t, make(map[reflect.Type]bool))
}

// walk derives the descriptor for t. seen holds the composite types on the
// current derivation path; revisiting one means the type refers to itself.
func walk(t reflect.Type, seen map[reflect.Type]bool) (*shapecheck.Descriptor, error) {
	if t == nil {
		return nil, fmt.Errorf("infer: nil type")
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Array, reflect.Struct:
		if seen[t] {
			return nil, fmt.Errorf("infer: recursive type %s", t)
		}
		seen[t] = true
		defer delete(seen, t)
	}
	switch t.Kind() {
	case reflect.Bool:
		return shapecheck.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return shapecheck.Int(), nil
	case reflect.Float32, reflect.Float64:
		return shapecheck.Float(), nil
	case reflect.String:
		if t == jsonNumberType {
			return shapecheck.Float(), nil
		}
		return shapecheck.String(), nil
	case reflect.Interface:
		return shapecheck.Any(), nil
	case reflect.Pointer:
		elem, err := walk(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return shapecheck.Optional(elem), nil
	case reflect.Slice:
		elem, err := walk(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return shapecheck.SequenceOf(elem), nil
	case reflect.Map:
		key, err := walk(t.Key(), seen)
		if err != nil {
			return nil, err
		}
		val, err := walk(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return shapecheck.MappingOf(key, val), nil
	case reflect.Array:
		elem, err := walk(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		elems := make([]*shapecheck.Descriptor, t.Len())
		for i := range elems {
			elems[i] = elem
		}
		return shapecheck.TupleOf(elems...), nil
	case reflect.Struct:
		return structType(t, seen)
	default:
		return nil, fmt.Errorf("infer: unsupported kind %s for type %s", t.Kind(), t)
	}
}

func structType(t reflect.Type, seen map[reflect.Type]bool) (*shapecheck.Descriptor, error) {
	fields := make([]shapecheck.Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, optional, skip := resolveKey(sf)
		if skip {
			continue
		}
		d, err := walk(sf.Type, seen)
		if err != nil {
			return nil, fmt.Errorf("infer: field %s.%s: %w", t.Name(), sf.Name, err)
		}
		if optional {
			fields = append(fields, shapecheck.Opt(name, d))
		} else {
			fields = append(fields, shapecheck.F(name, d))
		}
	}
	return shapecheck.Record(fields...), nil
}

// resolveKey applies the repository-wide rule for a struct field's external
// key: json tag name over field name; "-" disables the field; ",omitempty"
// marks it optional (a pointer field is already optional via Union[T, none],
// but still required to be present unless omitempty says otherwise).
func resolveKey(sf reflect.StructField) (name string, optional, skip bool) {
	name = sf.Name
	jt := sf.Tag.Get("json")
	if jt == "" {
		return name, false, false
	}
	parts := strings.Split(jt, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "", false, true
	}
	if parts[0] != "" {
		name = parts[0]
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			optional = true
		}
	}
	return name, optional, false
}
