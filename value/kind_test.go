package value_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"either-codec/value"
)

type nameString string

func TestKindOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want value.Kind
	}{
		{"nil", nil, value.KindNil},
		{"bool", false, value.KindBool},
		{"int", 42, value.KindInt},
		{"int64", int64(-3), value.KindInt64},
		{"uint8", uint8(7), value.KindUint8},
		{"float64", 1.5, value.KindFloat64},
		{"string", "abc", value.KindString},
		{"bytes", []byte{1, 2}, value.KindBytes},
		{"seq", []any{1, 2}, value.KindSeq},
		{"map", map[string]any{"a": 1}, value.KindMap},
		{"map any keys", map[any]any{1: "a"}, value.KindMap},
		{"json number unsigned", json.Number("18"), value.KindUint64},
		{"json number signed", json.Number("-5"), value.KindInt64},
		{"json number float", json.Number("1.5"), value.KindFloat64},
		{"named string", nameString("x"), value.KindString},
		{"typed slice", []int{1, 2}, value.KindSeq},
		{"typed map", map[string]int{"a": 1}, value.KindMap},
		{"pointer", new(int), value.KindPointer},
		{"struct is not a wire shape", struct{}{}, value.Kind(0)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, value.KindOf(tc.in))
		})
	}
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, value.KindUint64.IsNumber())
	assert.True(t, value.KindUint64.IsInteger())
	assert.True(t, value.KindUint64.IsUnsigned())
	assert.False(t, value.KindUint64.IsSigned())

	assert.True(t, value.KindInt8.IsSigned())
	assert.False(t, value.KindInt8.IsFloat())

	assert.True(t, value.KindFloat32.IsFloat())
	assert.False(t, value.KindFloat32.IsInteger())

	assert.True(t, value.KindString.IsScalar())
	assert.True(t, value.KindInt.IsScalar())
	assert.False(t, value.KindSeq.IsScalar())

	assert.True(t, value.KindSeq.IsContainer())
	assert.True(t, value.KindMap.IsContainer())
	assert.False(t, value.KindBytes.IsContainer())
}

func ExampleKind_String() {
	kinds := []value.Kind{value.KindString, value.KindMap, value.KindSeq, value.KindUint64}

	for _, k := range kinds {
		fmt.Println(k)
	}

	// Output:
	// KindString
	// KindMap
	// KindSeq
	// KindUint64
}
