package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-typed-collections/arr"
	"github.com/hasbyte1/go-typed-collections/collections"
)

// load reads the document at name ("-" or "" for stdin), follows the
// configured path and builds a collection of the configured element type.
func (a *app) load(stdin io.Reader, name string) (*collections.Collection[any], error) {
	data, err := readInput(stdin, name)
	if err != nil {
		return nil, err
	}

	// YAML is a superset of JSON, so one decoder covers both inputs.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", inputName(name), err)
	}
	if a.cfg.Path != "" && !arr.Has(doc, a.cfg.Path) {
		return nil, fmt.Errorf("%s: path %q not found", inputName(name), a.cfg.Path)
	}

	var items []any
	switch node := arr.Get(doc, a.cfg.Path).(type) {
	case nil:
	case []any:
		items = node
	default:
		return nil, fmt.Errorf("%s: expected a list at path %q, got %T", inputName(name), a.cfg.Path, node)
	}

	elem, err := collections.LookupType(a.cfg.Type)
	if err != nil {
		return nil, err
	}
	for i, item := range items {
		items[i] = coerce(elem, item)
	}
	c, err := collections.From(elem, items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputName(name), err)
	}
	a.logger.Debug("Collection loaded",
		zap.String("input", inputName(name)),
		zap.Stringer("type", elem),
		zap.Int("count", c.Count()))
	return c, nil
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func inputName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}

// parseValue reads a command-line argument as a YAML scalar, so "3" is an
// int, "1.5" a float64, "true" a bool and anything else a string.
func parseValue(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("parse value %q: %w", s, err)
	}
	switch v.(type) {
	case map[string]any, map[any]any, []any:
		return nil, fmt.Errorf("parse value %q: expected a scalar", s)
	}
	return v, nil
}

// parseValues parses args with parseValue and converts them to the
// configured element type.
func (a *app) parseValues(args []string) ([]any, error) {
	elem, err := collections.LookupType(a.cfg.Type)
	if err != nil {
		return nil, err
	}
	values := make([]any, 0, len(args))
	for _, s := range args {
		v, err := parseValue(s)
		if err != nil {
			return nil, err
		}
		values = append(values, coerce(elem, v))
	}
	return values, nil
}

func (a *app) value(s string) (any, error) {
	values, err := a.parseValues([]string{s})
	if err != nil {
		return nil, err
	}
	return values[0], nil
}

// coerce converts a decoded number to the numeric type elem names when the
// conversion is exact, so [1, 2] loads as int64 or float64 lists. Anything
// else is returned unchanged and left to validation.
func coerce(elem collections.ElementType, v any) any {
	rt := elem.Type()
	if rt == nil || v == nil || rt.PkgPath() != "" || !numeric(rt.Kind()) {
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == rt || !numeric(rv.Kind()) {
		return v
	}
	out := rv.Convert(rt)
	if !out.Convert(rv.Type()).Equal(rv) {
		return v
	}
	return out.Interface()
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// write renders v in the configured output format.
func (a *app) write(w io.Writer, v any) error {
	switch a.cfg.Output {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		return enc.Encode(v)
	}
}
