package classname

import (
	"encoding/json"
	"math"
	"strconv"
)

// FromAny converts loosely typed input, such as decoded JSON or template
// arguments, into a Value.
//
// Strings become [String], non-zero numbers become their decimal form,
// slices become [List] and string-keyed maps become [Cond] with keys whose
// values are truthy. Booleans, nil, zero numbers and unsupported types are
// ignored.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Empty{}
	case Value:
		return t
	case string:
		return String(t)
	case []string:
		l := make(List, 0, len(t))
		for _, s := range t {
			l = append(l, String(s))
		}
		return l
	case []any:
		l := make(List, 0, len(t))
		for _, e := range t {
			l = append(l, FromAny(e))
		}
		return l
	case map[string]bool:
		return Map(t)
	case map[string]any:
		m := make(map[string]bool, len(t))
		for k, e := range t {
			m[k] = truthy(e)
		}
		return Map(m)
	case json.Number:
		f, err := t.Float64()
		if err != nil || f == 0 {
			return Empty{}
		}
		return String(t.String())
	case int:
		if t == 0 {
			return Empty{}
		}
		return String(strconv.Itoa(t))
	case int64:
		if t == 0 {
			return Empty{}
		}
		return String(strconv.FormatInt(t, 10))
	case float64:
		if t == 0 || math.IsNaN(t) {
			return Empty{}
		}
		return String(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		return Empty{}
	}
}

// truthy follows JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}
