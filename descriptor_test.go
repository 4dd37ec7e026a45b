package shapecheck_test

import (
	"testing"

	shapecheck "github.com/SogoKato/shapecheck"
)

func TestDescriptor_Accessors(t *testing.T) {
	d := shapecheck.Record(
		shapecheck.F("id", shapecheck.Int()),
		shapecheck.Opt("tags", shapecheck.SequenceOf(shapecheck.String())),
	)
	if d.Kind() != shapecheck.KindRecord {
		t.Fatalf("expected record kind, got %s", d.Kind())
	}
	fields := d.Fields()
	if len(fields) != 2 || fields[0].Name != "id" || !fields[0].Required || fields[1].Required {
		t.Fatalf("unexpected fields: %+v", fields)
	}
	if fields[1].Desc.Kind() != shapecheck.KindSequence || fields[1].Desc.Elem().Kind() != shapecheck.KindString {
		t.Fatalf("unexpected tags descriptor: %s", fields[1].Desc)
	}

	m := shapecheck.MappingOf(shapecheck.String(), shapecheck.Float())
	if m.Key().Kind() != shapecheck.KindString || m.Value().Kind() != shapecheck.KindFloat {
		t.Fatalf("unexpected mapping accessors: %s", m)
	}

	u := shapecheck.Optional(shapecheck.Int())
	alts := u.Alternatives()
	if u.Kind() != shapecheck.KindUnion || len(alts) != 2 || alts[1].Kind() != shapecheck.KindNone {
		t.Fatalf("Optional must desugar to union[T|none], got %s", u)
	}

	tp := shapecheck.TupleOf(shapecheck.Int(), shapecheck.String())
	if len(tp.Elems()) != 2 {
		t.Fatalf("unexpected tuple accessors: %s", tp)
	}
}

func TestDescriptor_String(t *testing.T) {
	d := shapecheck.Record(
		shapecheck.F("name", shapecheck.String()),
		shapecheck.Opt("age", shapecheck.Union(shapecheck.Int(), shapecheck.None())),
	)
	want := "record{name: string, age?: union[integer|none]}"
	if got := d.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	tp := shapecheck.TupleOf(shapecheck.Int(), shapecheck.SequenceOf(shapecheck.Bool()))
	if got := tp.String(); got != "tuple[integer, sequence[boolean]]" {
		t.Fatalf("String() = %q", got)
	}

	m := shapecheck.MappingOf(shapecheck.String(), shapecheck.Any())
	if got := m.String(); got != "mapping[string, any]" {
		t.Fatalf("String() = %q", got)
	}
}

func TestDescriptor_PrimitiveSingletonsAreShared(t *testing.T) {
	if shapecheck.Int() != shapecheck.Int() || shapecheck.String() != shapecheck.String() {
		t.Fatalf("primitive constructors must return shared immutable descriptors")
	}
}
