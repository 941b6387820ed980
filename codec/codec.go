// Package codec adapts concrete wire formats to the decode pipeline. A
// Codec is the front-end seam: it turns raw bytes into Go trees that
// value.Of can classify, and payloads back into bytes.
package codec

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"either-codec/value"
)

type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSON returns the JSON codec. Numbers are decoded as json.Number so their
// integer class survives into shape classification and error messages.
func JSON() Codec { return jsonCodec{} }

// YAML returns the YAML codec.
func YAML() Codec { return yamlCodec{} }

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// DecodeValue buffers one document from data into a generic Value. Syntax
// errors from the front end are fatal and carry the codec name.
func DecodeValue(c Codec, data []byte) (value.Value, error) {
	var raw any
	if err := c.Unmarshal(data, &raw); err != nil {
		return value.Value{}, errors.Wrapf(err, "%s codec", c.Name())
	}

	return value.Of(raw), nil
}
