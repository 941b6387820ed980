// Package value buffers whatever a front-end decoder produced into a
// self-describing, format-agnostic form. A Value is built once per decode
// call, classified by its top-level Kind, optionally replayed into a typed
// destination, and then discarded. It is never mutated after construction.
package value

import "fmt"

// Value is an immutable pair of a classified Kind and the buffered front-end
// tree it was derived from.
type Value struct {
	kind Kind
	raw  any
}

// Of buffers an already-decoded front-end tree. Inputs no front-end can
// produce classify as the zero Kind and fail later on Decode.
func Of(v any) Value {
	return Value{kind: KindOf(v), raw: v}
}

// Kind returns the classified top-level shape.
func (v Value) Kind() Kind { return v.kind }

// Raw returns the buffered tree as the front-end produced it.
func (v Value) Raw() any { return v.raw }

func (v Value) IsValid() bool { return v.kind != 0 }

// Describe renders the active shape for error messages, including the
// payload for scalar kinds: "unsigned integer 18", "boolean false", "map".
func (v Value) Describe() string {
	switch k := v.kind; {
	default:
		return "invalid value"
	case k == KindNil:
		return "nil"
	case k == KindBool:
		return fmt.Sprintf("boolean %v", v.raw)
	case k.IsSigned():
		return fmt.Sprintf("signed integer %v", v.raw)
	case k.IsUnsigned():
		return fmt.Sprintf("unsigned integer %v", v.raw)
	case k.IsFloat():
		return fmt.Sprintf("floating-point number %v", v.raw)
	case k == KindString:
		return fmt.Sprintf("string %q", v.raw)
	case k == KindBytes:
		return "byte string"
	case k == KindPointer:
		return "pointer"
	case k == KindSeq:
		return "sequence"
	case k == KindMap:
		return "map"
	}
}
