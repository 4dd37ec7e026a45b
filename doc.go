package shapecheck

// Package shapecheck validates loosely-typed decoded data (the any trees
// produced by JSON/YAML decoders) against a declarative type descriptor.
//
// It provides:
//
// - An immutable Descriptor tree (primitives, records, unions, sequences,
//   mappings, tuples) built once and shared freely across goroutines
// - A recursive structural matcher with a stable error model via Issues
//   (JSON Pointer, code, expected/actual kinds)
// - A configurable recursion depth limit that turns runaway nesting into a
//   regular depth_exceeded issue instead of a stack overflow
//
// Design policy:
// - Keep only public APIs in the root package; place the struct-reflection
//   descriptor provider under infer/ and the message catalog under i18n/.
// - The matcher never mutates values and never coerces; it only checks shape.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  d := shapecheck.Record(
//      shapecheck.F("name", shapecheck.String()),
//      shapecheck.F("age", shapecheck.Int()),
//      shapecheck.Opt("nickname", shapecheck.String()),
//  )
//  if err := shapecheck.Validate(decoded, d); err != nil { ... }
//  ok := shapecheck.Is(decoded, d)
//
