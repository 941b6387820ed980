package either

import (
	"gopkg.in/yaml.v3"

	"either-codec/codec"
	"either-codec/value"
)

const (
	expectStringOrStruct      = "String or Struct"
	expectStringOrStructOrVec = "String, Struct or Vec"
)

// unmarshalExpecting is the shared shape dispatcher. The input has already
// been buffered into a Value; classification looks at the top-level Kind
// only and never backtracks. Front-end and payload decoder errors pass
// through unchanged.
func (e *StringOrStructOrVec[S, V]) unmarshalExpecting(val value.Value, expected string) error {
	switch val.Kind() {
	default:
		return &UnexpectedTypeError{Value: val, Expected: expected}

	case value.KindString, value.KindBytes:
		var s string
		if err := val.Decode(&s); err != nil {
			return err
		}
		e.SetString(s)

	case value.KindSeq:
		var v V
		if err := val.Decode(&v); err != nil {
			return err
		}
		e.SetVec(v)

	case value.KindMap:
		var s S
		if err := val.Decode(&s); err != nil {
			return err
		}
		e.SetStruct(s)
	}

	return nil
}

// UnmarshalValue decodes the buffered value into one of the three cases, or
// fails with an UnexpectedTypeError for any other shape.
func (e *StringOrStructOrVec[S, V]) UnmarshalValue(val value.Value) error {
	return e.unmarshalExpecting(val, expectStringOrStructOrVec)
}

// UnmarshalValue decodes through the three-way dispatcher with S bound to
// both payload slots, then collapses the Vec case into Struct. A sequence
// shape therefore decodes into S itself, so S = []T accepts a sequence of T
// as its Struct form.
func (e *StringOrStruct[S]) UnmarshalValue(val value.Value) error {
	var three StringOrStructOrVec[S, S]
	if err := three.unmarshalExpecting(val, expectStringOrStruct); err != nil {
		return err
	}

	switch three.Case() {
	case CaseString:
		s, _ := three.StringValue()
		e.SetString(s)
	case CaseStruct:
		v, _ := three.StructValue()
		e.SetStruct(v)
	case CaseVec:
		v, _ := three.VecValue()
		e.SetStruct(v)
	}

	return nil
}

// UnmarshalValue decodes a sequence shape as []S and every other shape as a
// single S. Unlike the other either types there is no shape check of its
// own: a non-matching shape surfaces only as the S decoder's failure.
func (e *SingleOrVec[S]) UnmarshalValue(val value.Value) error {
	if val.Kind() == value.KindSeq {
		var vs []S
		if err := val.Decode(&vs); err != nil {
			return err
		}
		e.SetVec(vs)
		return nil
	}

	var s S
	if err := val.Decode(&s); err != nil {
		return err
	}
	e.SetSingle(s)
	return nil
}

func (e *StringOrStruct[S]) UnmarshalJSON(data []byte) error {
	val, err := codec.DecodeValue(codec.JSON(), data)
	if err != nil {
		return err
	}
	return e.UnmarshalValue(val)
}

func (e *StringOrStructOrVec[S, V]) UnmarshalJSON(data []byte) error {
	val, err := codec.DecodeValue(codec.JSON(), data)
	if err != nil {
		return err
	}
	return e.UnmarshalValue(val)
}

func (e *SingleOrVec[S]) UnmarshalJSON(data []byte) error {
	val, err := codec.DecodeValue(codec.JSON(), data)
	if err != nil {
		return err
	}
	return e.UnmarshalValue(val)
}

func (e *StringOrStruct[S]) UnmarshalYAML(node *yaml.Node) error {
	val, err := bufferYAML(node)
	if err != nil {
		return err
	}
	return e.UnmarshalValue(val)
}

func (e *StringOrStructOrVec[S, V]) UnmarshalYAML(node *yaml.Node) error {
	val, err := bufferYAML(node)
	if err != nil {
		return err
	}
	return e.UnmarshalValue(val)
}

func (e *SingleOrVec[S]) UnmarshalYAML(node *yaml.Node) error {
	val, err := bufferYAML(node)
	if err != nil {
		return err
	}
	return e.UnmarshalValue(val)
}

func bufferYAML(node *yaml.Node) (value.Value, error) {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return value.Value{}, err
	}
	return value.Of(raw), nil
}
