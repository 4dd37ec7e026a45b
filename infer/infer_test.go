package infer_test

import (
	"reflect"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	shapecheck "github.com/SogoKato/shapecheck"
	"github.com/SogoKato/shapecheck/infer"
)

type address struct {
	City string `json:"city"`
	Zip  string `json:"zip,omitempty"`
}

type person struct {
	Name      string         `json:"name"`
	Age       int            `json:"age"`
	Interests []string       `json:"interests"`
	Nickname  string         `json:"nickname,omitempty"`
	Address   *address       `json:"address"`
	Scores    [2]int         `json:"scores"`
	Meta      map[string]any `json:"meta,omitempty"`
	Secret    string         `json:"-"`
	internal  bool           // unexported: must be skipped by inference
}

func TestTypeOf_Struct(t *testing.T) {
	d, err := infer.TypeOf[person]()
	if err != nil {
		t.Fatalf("TypeOf failed: %v", err)
	}
	if d.Kind() != shapecheck.KindRecord {
		t.Fatalf("expected record, got %s", d.Kind())
	}

	byName := map[string]shapecheck.Field{}
	for _, f := range d.Fields() {
		byName[f.Name] = f
	}
	if _, ok := byName["Secret"]; ok {
		t.Fatalf(`json:"-" field must be skipped`)
	}
	if _, ok := byName["internal"]; ok {
		t.Fatalf("unexported field must be skipped")
	}
	if f := byName["nickname"]; f.Required {
		t.Fatalf("omitempty field must be optional")
	}
	if f := byName["name"]; !f.Required || f.Desc.Kind() != shapecheck.KindString {
		t.Fatalf("unexpected name field: %+v", f)
	}
	if f := byName["address"]; f.Desc.Kind() != shapecheck.KindUnion {
		t.Fatalf("pointer field must infer Optional (union), got %s", f.Desc)
	}
	if f := byName["scores"]; f.Desc.Kind() != shapecheck.KindTuple || len(f.Desc.Elems()) != 2 {
		t.Fatalf("array field must infer a tuple, got %s", f.Desc)
	}
	if f := byName["interests"]; f.Desc.Kind() != shapecheck.KindSequence {
		t.Fatalf("slice field must infer a sequence, got %s", f.Desc)
	}
	if f := byName["meta"]; f.Desc.Kind() != shapecheck.KindMapping || f.Desc.Value().Kind() != shapecheck.KindAny {
		t.Fatalf("map field must infer a mapping, got %s", f.Desc)
	}
}

func TestTypeOf_RoundTripAgainstDecodedJSON(t *testing.T) {
	d, err := infer.TypeOf[person]()
	if err != nil {
		t.Fatalf("TypeOf failed: %v", err)
	}

	decode := func(src string) any {
		var v any
		if err := json.Unmarshal([]byte(src), &v); err != nil {
			t.Fatalf("fixture decode failed: %v", err)
		}
		return v
	}

	ok := decode(`{
		"name": "Taro Yamada",
		"age": 30,
		"interests": ["programming"],
		"address": {"city": "Tokyo"},
		"scores": [70, 80]
	}`)
	if err := shapecheck.Validate(ok, d); err != nil {
		t.Fatalf("expected decoded document to match inferred descriptor, got %v", err)
	}

	// pointer field accepts explicit null
	if !shapecheck.Is(decode(`{
		"name": "n", "age": 1, "interests": [], "address": null, "scores": [0, 0]
	}`), d) {
		t.Fatalf("expected null to satisfy a pointer field")
	}

	it := mustIssue(t, shapecheck.Validate(decode(`{
		"name": "n", "age": 1, "interests": [], "address": {"city": 5}, "scores": [0, 0]
	}`), d))
	if it.Code != shapecheck.CodeUnionMismatch || it.Path != "/address" {
		t.Fatalf("expected union_mismatch at /address, got %s at %s", it.Code, it.Path)
	}

	it = mustIssue(t, shapecheck.Validate(decode(`{
		"name": "n", "age": 1, "interests": [], "address": null, "scores": [0, 0, 0]
	}`), d))
	if it.Code != shapecheck.CodeLengthMismatch || it.Path != "/scores" {
		t.Fatalf("expected length_mismatch at /scores, got %s at %s", it.Code, it.Path)
	}
}

type node struct {
	Value int   `json:"value"`
	Next  *node `json:"next"`
}

type tree struct {
	Label    string `json:"label"`
	Children []tree `json:"children"`
}

func TestTypeOf_RecursiveTypesReturnError(t *testing.T) {
	if _, err := infer.TypeOf[node](); err == nil {
		t.Fatalf("expected error for self-referential pointer type")
	} else if !strings.Contains(err.Error(), "recursive type") {
		t.Fatalf("expected a recursive-type error, got %v", err)
	}

	if _, err := infer.TypeOf[tree](); err == nil {
		t.Fatalf("expected error for self-referential slice type")
	}

	// sibling fields of the same non-recursive type are still fine
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	type box struct {
		Min point `json:"min"`
		Max point `json:"max"`
	}
	d, err := infer.TypeOf[box]()
	if err != nil {
		t.Fatalf("repeated sibling types must not be mistaken for a cycle: %v", err)
	}
	if len(d.Fields()) != 2 {
		t.Fatalf("unexpected descriptor: %s", d)
	}
}

func TestType_NonStructAndUnsupported(t *testing.T) {
	d, err := infer.Type(reflect.TypeOf(map[string][]int{}))
	if err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if d.String() != "mapping[string, sequence[integer]]" {
		t.Fatalf("unexpected descriptor: %s", d)
	}

	if _, err := infer.Type(reflect.TypeOf(make(chan int))); err == nil {
		t.Fatalf("expected error for chan kind")
	}
	type weird struct {
		C complex128 `json:"c"`
	}
	if _, err := infer.TypeOf[weird](); err == nil {
		t.Fatalf("expected error for complex field")
	}
}

func mustIssue(t *testing.T, err error) shapecheck.Issue {
	t.Helper()
	iss, ok := shapecheck.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss[0]
}
