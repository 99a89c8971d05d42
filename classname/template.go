package classname

import "html/template"

// FuncMap exposes m as the "cn" template function:
//
//	<div class="{{ cn "px-2 py-1" .Extra .Toggles }}">
//
// Arguments are converted with [FromAny]. A nil m uses the Tailwind rules.
func FuncMap(m *Merger) template.FuncMap {
	if m == nil {
		m = defaultMerger
	}
	return template.FuncMap{
		"cn": func(args ...any) string {
			values := make([]Value, 0, len(args))
			for _, a := range args {
				values = append(values, FromAny(a))
			}
			return m.Merge(values...)
		},
	}
}
