// Package render turns arbitrary values into human-readable text for log payloads.
package render

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("render")

// Renderer produces a deterministic, human-readable representation of a value.
//
// Render never fails: when a value cannot be marshaled it falls back to fmt's %+v verb.
type Renderer interface {
	Render(v any) string
}

// Func is an adapter to use ordinary functions as a Renderer.
type Func func(v any) string

func (fn Func) Render(v any) string {
	return fn(v)
}

const defaultIndent = "  "

// JSON renders values as JSON.
//
// The zero value renders indented JSON.
type JSON struct {
	// Indent is the indentation string. Defaults to two spaces.
	Indent string

	// Compact disables indentation.
	Compact bool
}

// Marshal returns the JSON representation of v.
func (r JSON) Marshal(v any) (string, error) {
	var (
		b   []byte
		err error
	)

	if r.Compact {
		b, err = json.Marshal(v)
	} else {
		indent := r.Indent
		if indent == "" {
			indent = defaultIndent
		}

		b, err = json.MarshalIndent(v, "", indent)
	}

	if err != nil {
		return "", Error.Wrap(err)
	}

	return string(b), nil
}

func (r JSON) Render(v any) string {
	return renderOrFallback(v, r.Marshal)
}

// YAML renders values as YAML.
type YAML struct{}

// Marshal returns the YAML representation of v.
func (YAML) Marshal(v any) (s string, err error) {
	// yaml.v3 panics on some unsupported types (eg. channels and functions)
	defer func() {
		if r := recover(); r != nil {
			err = Error.New("%v", r)
		}
	}()

	b, err := yaml.Marshal(v)
	if err != nil {
		return "", Error.Wrap(err)
	}

	return strings.TrimSuffix(string(b), "\n"), nil
}

func (r YAML) Render(v any) string {
	return renderOrFallback(v, r.Marshal)
}

func renderOrFallback(v any, marshal func(any) (string, error)) string {
	s, err := marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}

	return s
}
