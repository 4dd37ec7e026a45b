package shapecheck

import (
	"github.com/SogoKato/shapecheck/i18n"
)

// matchValue is the recursive structural matcher. It returns nil when v
// matches d and the first, most specific Issue otherwise. It never mutates v
// and keeps no state between calls; failure of one branch leaves no trace in
// another.
//
// Malformed descriptor nodes reached here (possible only by bypassing the
// constructors) panic with *InvalidDescriptorError: programmer error, not a
// data-validation failure.
func matchValue(v any, d *Descriptor, p *pathRef, depth, maxDepth int) *Issue {
	if err := d.check(); err != nil {
		panic(err)
	}
	if depth > maxDepth {
		return &Issue{
			Path:    p.pointer(),
			Code:    CodeDepthExceeded,
			Message: i18n.T(CodeDepthExceeded, nil),
			Params:  map[string]any{"maxDepth": maxDepth},
		}
	}

	switch d.kind {
	case KindAny:
		return nil
	case KindBool:
		return matchScalar(v, d, p, vkBool)
	case KindString:
		return matchScalar(v, d, p, vkString)
	case KindNone:
		return matchScalar(v, d, p, vkNone)
	case KindInt:
		// integral floats satisfy Int; see floatKind.
		return matchScalar(v, d, p, vkIntegral)
	case KindFloat:
		if k := kindOf(v); k == vkIntegral || k == vkFraction {
			return nil
		}
		return mismatch(v, d, p)
	case KindRecord:
		return matchRecord(v, d, p, depth, maxDepth)
	case KindUnion:
		return matchUnion(v, d, p, depth, maxDepth)
	case KindSequence:
		return matchSequence(v, d, p, depth, maxDepth)
	case KindMapping:
		return matchMapping(v, d, p, depth, maxDepth)
	case KindLiteral:
		return matchLiteral(v, d, p)
	default: // KindTuple
		return matchTuple(v, d, p, depth, maxDepth)
	}
}

// matchLiteral is a membership check: the value must equal one of the
// enumerated constants.
func matchLiteral(v any, d *Descriptor, p *pathRef) *Issue {
	for _, lit := range d.lits {
		if literalEquals(v, lit) {
			return nil
		}
	}
	return mismatch(v, d, p)
}

func matchScalar(v any, d *Descriptor, p *pathRef, want valueKind) *Issue {
	if kindOf(v) == want {
		return nil
	}
	return mismatch(v, d, p)
}

// matchRecord checks declared fields in declaration order: the first missing
// required field or the first mismatching present field wins. Keys present in
// the value but not declared in d are ignored.
func matchRecord(v any, d *Descriptor, p *pathRef, depth, maxDepth int) *Issue {
	m, ok := recordEntries(v)
	if !ok {
		return mismatch(v, d, p)
	}
	for _, f := range d.fields {
		fv, present := m[f.Name]
		if !present {
			if f.Required {
				return &Issue{
					Path:     p.field(f.Name).pointer(),
					Code:     CodeMissingKey,
					Message:  i18n.T(CodeMissingKey, nil),
					Hint:     "required key missing",
					Expected: f.Desc.String(),
					Params:   map[string]any{"key": f.Name},
				}
			}
			continue
		}
		if iss := matchValue(fv, f.Desc, p.field(f.Name), depth+1, maxDepth); iss != nil {
			return iss
		}
	}
	return nil
}

// matchUnion tries alternatives in declaration order and succeeds on the
// first match. On total failure the issue lists every attempted alternative,
// not just the last one.
func matchUnion(v any, d *Descriptor, p *pathRef, depth, maxDepth int) *Issue {
	attempted := make([]string, len(d.alts))
	for i, alt := range d.alts {
		attempted[i] = alt.String()
		if iss := matchValue(v, alt, p, depth+1, maxDepth); iss == nil {
			return nil
		} else if iss.Code == CodeDepthExceeded {
			return iss
		}
	}
	return &Issue{
		Path:     p.pointer(),
		Code:     CodeUnionMismatch,
		Message:  i18n.T(CodeUnionMismatch, nil),
		Hint:     "no alternative matched",
		Expected: d.String(),
		Actual:   kindName(v),
		Params:   map[string]any{"alternatives": attempted},
	}
}

func matchSequence(v any, d *Descriptor, p *pathRef, depth, maxDepth int) *Issue {
	seq, ok := v.([]any)
	if !ok {
		return mismatch(v, d, p)
	}
	for i, ev := range seq {
		if iss := matchValue(ev, d.elem, p.index(i), depth+1, maxDepth); iss != nil {
			return iss
		}
	}
	return nil
}

func matchMapping(v any, d *Descriptor, p *pathRef, depth, maxDepth int) *Issue {
	pairs, ok := pairsOf(v)
	if !ok {
		return mismatch(v, d, p)
	}
	for _, pr := range pairs {
		kp := p.field(pr.keyName)
		if iss := matchValue(pr.key, d.key, kp, depth+1, maxDepth); iss != nil {
			return iss
		}
		if iss := matchValue(pr.val, d.value, kp, depth+1, maxDepth); iss != nil {
			return iss
		}
	}
	return nil
}

func matchTuple(v any, d *Descriptor, p *pathRef, depth, maxDepth int) *Issue {
	seq, ok := v.([]any)
	if !ok {
		return mismatch(v, d, p)
	}
	if len(seq) != len(d.elems) {
		return &Issue{
			Path:     p.pointer(),
			Code:     CodeLengthMismatch,
			Message:  i18n.T(CodeLengthMismatch, nil),
			Expected: d.String(),
			Actual:   kindName(v),
			Params:   map[string]any{"expected": len(d.elems), "actual": len(seq)},
		}
	}
	for i, ev := range seq {
		if iss := matchValue(ev, d.elems[i], p.index(i), depth+1, maxDepth); iss != nil {
			return iss
		}
	}
	return nil
}

func mismatch(v any, d *Descriptor, p *pathRef) *Issue {
	return &Issue{
		Path:     p.pointer(),
		Code:     CodeTypeMismatch,
		Message:  i18n.T(CodeTypeMismatch, nil),
		Hint:     "expected " + d.String(),
		Expected: d.String(),
		Actual:   kindName(v),
	}
}
