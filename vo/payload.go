package vo

import (
	"net/url"
	"strings"
)

// Field one form field of a pagination request
type Field struct {
	Name  string `yaml:"name" validate:"required"`
	Value string `yaml:"value"`
}

// Payload an ordered list of form fields
type Payload []Field

// With returns a copy of p with name=value appended, p is left untouched
func (p Payload) With(name, value string) Payload {
	next := make(Payload, len(p), len(p)+1)
	copy(next, p)
	return append(next, Field{Name: name, Value: value})
}

func (p Payload) Get(name string) (value string, ok bool) {
	for _, f := range p {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Encode form urlencodes the fields in their order
func (p Payload) Encode() string {
	parts := make([]string, len(p))
	for i, f := range p {
		parts[i] = url.QueryEscape(f.Name) + "=" + url.QueryEscape(f.Value)
	}
	return strings.Join(parts, "&")
}
