package env

import (
	"encoding/json"
	"maps"
	"slices"
)

// Mapping is an immutable string-keyed set of environment variables.
//
// The zero value is an empty mapping. Mappings are safe for concurrent reads.
type Mapping struct {
	values map[string]string
}

// NewMapping copies values into a new Mapping.
func NewMapping(values map[string]string) Mapping {
	return Mapping{values: maps.Clone(values)}
}

// Get returns the value for key and reports whether it was set.
// A variable that is set to the empty string returns ("", true).
func (m Mapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Value returns the value for key or the empty string when it is absent.
func (m Mapping) Value(key string) string {
	return m.values[key]
}

// Has reports whether key is present.
func (m Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of variables.
func (m Mapping) Len() int {
	return len(m.values)
}

// Keys returns the variable names in lexical order.
func (m Mapping) Keys() []string {
	return slices.Sorted(maps.Keys(m.values))
}

// ToMap returns a copy of the underlying variables.
func (m Mapping) ToMap() map[string]string {
	out := make(map[string]string, len(m.values))
	maps.Copy(out, m.values)
	return out
}

// MarshalJSON encodes the mapping as a JSON object. encoding/json sorts map
// keys, so the output is stable.
func (m Mapping) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToMap())
}
