package reader

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Values is a map-backed ElementSource for embedders and tests. Attribute
// values must already carry their final type; a value of the wrong type is
// treated as absent and the default applies, mirroring how the tokenizer
// hands over only successfully converted attributes.
type Values struct {
	Def      string
	Use      string
	Children bool
	Attrs    map[string]any
}

var _ ElementSource = Values{}

func (v Values) DefName() string {
	return v.Def
}

func (v Values) UseName() string {
	return v.Use
}

func (v Values) HasChildren() bool {
	return v.Children
}

func (v Values) Float(name string, def float64) float64 {
	if f, ok := v.Attrs[name].(float64); ok {
		return f
	}
	return def
}

func (v Values) Bool(name string, def bool) bool {
	if b, ok := v.Attrs[name].(bool); ok {
		return b
	}
	return def
}

func (v Values) String(name string, def string) string {
	if s, ok := v.Attrs[name].(string); ok {
		return s
	}
	return def
}

func (v Values) Vec2(name string, def v2.Vec) v2.Vec {
	if p, ok := v.Attrs[name].(v2.Vec); ok {
		return p
	}
	return def
}

func (v Values) Vec2List(name string) []v2.Vec {
	if l, ok := v.Attrs[name].([]v2.Vec); ok {
		return l
	}
	return nil
}
