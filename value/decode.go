package value

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Unmarshaler is implemented by types that decode themselves from a buffered
// Value instead of any single wire format.
type Unmarshaler interface {
	UnmarshalValue(Value) error
}

var unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()

var ErrNilTarget = errors.New("value: decode target must be a non-nil pointer")

// Decode replays the buffered tree into target, which must be a non-nil
// pointer. Struct fields resolve through `json` tags so targets keep a
// single set of wire names across front-end formats. Decode failures are the
// typed decoder's own and are returned unwrapped.
func (v Value) Decode(target any) error {
	if !v.IsValid() {
		return errors.Errorf("value: cannot decode unsupported input of type %T", v.raw)
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrNilTarget
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "json",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			bytesToStringHook,
			unmarshalerHook,
		),
	})
	if err != nil {
		return err
	}

	return dec.Decode(v.raw)
}

func bytesToStringHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.Slice && from.Elem().Kind() == reflect.Uint8 && to.Kind() == reflect.String {
		return string(reflect.ValueOf(data).Bytes()), nil
	}

	return data, nil
}

// unmarshalerHook routes nested fields that implement Unmarshaler through
// their own shape dispatch instead of plain field mapping.
func unmarshalerHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from == to || !reflect.PtrTo(to).Implements(unmarshalerType) {
		return data, nil
	}

	dst := reflect.New(to)
	if err := dst.Interface().(Unmarshaler).UnmarshalValue(Of(data)); err != nil {
		return nil, err
	}

	return dst.Elem().Interface(), nil
}
