package value_test

import (
	"encoding/json"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"either-codec/value"
)

func TestValueDescribe(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want string
	}{
		{nil, "nil"},
		{false, "boolean false"},
		{json.Number("18"), "unsigned integer 18"},
		{json.Number("-5"), "signed integer -5"},
		{json.Number("1.5"), "floating-point number 1.5"},
		{-7, "signed integer -7"},
		{"abc", `string "abc"`},
		{[]byte{1}, "byte string"},
		{new(int), "pointer"},
		{[]any{}, "sequence"},
		{map[string]any{}, "map"},
		{struct{}{}, "invalid value"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, value.Of(tc.in).Describe())
		})
	}
}

type song struct {
	Title string `json:"title"`
	Plays int    `json:"plays"`
}

func TestValueDecode(t *testing.T) {
	t.Parallel()

	t.Run("map into struct", func(t *testing.T) {
		t.Parallel()

		val := value.Of(map[string]any{"title": "go", "plays": json.Number("3")})
		require.Equal(t, value.KindMap, val.Kind())

		var s song
		require.NoError(t, val.Decode(&s))
		assert.Equal(t, song{Title: "go", Plays: 3}, s)

		t.Log(spew.Sdump(s))
	})

	t.Run("sequence into byte slice", func(t *testing.T) {
		t.Parallel()

		val := value.Of([]any{json.Number("1"), json.Number("5"), json.Number("8")})

		var b []uint8
		require.NoError(t, val.Decode(&b))
		assert.Equal(t, []uint8{1, 5, 8}, b)
	})

	t.Run("bytes into string", func(t *testing.T) {
		t.Parallel()

		val := value.Of([]byte("hello"))
		require.Equal(t, value.KindBytes, val.Kind())

		var s string
		require.NoError(t, val.Decode(&s))
		assert.Equal(t, "hello", s)
	})

	t.Run("payload failure is the typed decoder's own", func(t *testing.T) {
		t.Parallel()

		var s song
		err := value.Of("not a map").Decode(&s)
		assert.Error(t, err)
	})

	t.Run("nil target", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, value.Of("x").Decode(nil), value.ErrNilTarget)

		var s *string
		assert.ErrorIs(t, value.Of("x").Decode(s), value.ErrNilTarget)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		var s string
		assert.Error(t, value.Of(struct{}{}).Decode(&s))
	})
}
