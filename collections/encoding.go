package collections

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Collections encode as plain JSON / YAML sequences. Decoding validates every
// item against the receiver's element type, so declare the type before
// decoding:
//
//	c, _ := collections.Empty[any](collections.String)
//	err := json.Unmarshal(data, c)
//
// A decode that fails validation leaves the receiver unchanged. JSON numbers
// decoded into an interface element type become float64; decode YAML, or use
// a concrete T, when integers must stay integers.

// MarshalJSON implements [json.Marshaler].
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	return c.replace(items)
}

// MarshalYAML implements [yaml.Marshaler].
func (c *Collection[T]) MarshalYAML() (any, error) {
	if c.items == nil {
		return []T{}, nil
	}
	return c.items, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (c *Collection[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	return c.replace(items)
}

func (c *Collection[T]) replace(items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := validate(c.elem, items); err != nil {
		return err
	}
	c.items = items
	return nil
}

var (
	_ json.Marshaler   = (*Collection[any])(nil)
	_ json.Unmarshaler = (*Collection[any])(nil)
	_ yaml.Marshaler   = (*Collection[any])(nil)
	_ yaml.Unmarshaler = (*Collection[any])(nil)
)
