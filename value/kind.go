package value

import (
	"encoding/json"
	"reflect"
	"strconv"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindNil
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindBytes
	KindPointer
	KindSeq
	KindMap

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k Kind) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k Kind) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k Kind) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

// IsScalar reports whether the kind is a single self-contained value.
func (k Kind) IsScalar() bool {
	if k.IsNumber() {
		return true
	}

	switch k {
	default:
		return false
	case KindNil, KindBool, KindString, KindBytes:
		return true
	}
}

// IsContainer reports whether the kind holds other values.
func (k Kind) IsContainer() bool {
	return k == KindSeq || k == KindMap
}

// KindOf classifies an already-decoded front-end value. Unclassifiable
// inputs yield the zero Kind.
func KindOf(v any) Kind {
	// check if a true front-end primitive
	switch n := v.(type) {
	case nil:
		return KindNil
	case bool:
		return KindBool
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case string:
		return KindString
	case []byte:
		return KindBytes
	case json.Number:
		return numberKind(n)
	case []any:
		return KindSeq
	case map[string]any, map[any]any:
		return KindMap
	}

	// named and uncommon shapes fall through to reflection
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindBytes
		}
		return KindSeq
	case reflect.Map:
		return KindMap
	case reflect.Ptr:
		return KindPointer
	}
}

// numberKind picks the narrowest integer class a json.Number fits into,
// so "18" reports as unsigned and "-5" as signed in error messages.
func numberKind(n json.Number) Kind {
	if _, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return KindUint64
	}
	if _, err := n.Int64(); err == nil {
		return KindInt64
	}
	return KindFloat64
}
