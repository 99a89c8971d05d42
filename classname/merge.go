package classname

import (
	"slices"
	"strings"
)

// Merger flattens class values and resolves utility conflicts.
type Merger struct {
	resolver Resolver
}

// NewMerger returns a Merger using resolver. A nil resolver selects
// [TailwindResolver].
func NewMerger(resolver Resolver) *Merger {
	if resolver == nil {
		resolver = TailwindResolver{}
	}
	return &Merger{resolver: resolver}
}

// Merge flattens values, lets the resolver drop overridden classes, removes
// exact duplicates (the last occurrence wins) and joins the result with
// single spaces. It returns "" when no class survives.
func (m *Merger) Merge(values ...Value) string {
	tokens := Tokens(values...)
	if len(tokens) == 0 {
		return ""
	}

	return strings.Join(dedupe(m.resolver.Resolve(tokens)), " ")
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		if _, ok := seen[t]; ok || t == "" {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	slices.Reverse(out)
	return out
}

var defaultMerger = NewMerger(TailwindResolver{})

// CN merges values with the Tailwind rules.
func CN(values ...Value) string {
	return defaultMerger.Merge(values...)
}

// DefaultGroupTableName selects [DefaultGroupTable] in [LoadMerger].
const DefaultGroupTableName = "default"

// LoadMerger returns a Merger backed by the group table stored at path, by
// [DefaultGroupTable] when path is [DefaultGroupTableName], or by the
// Tailwind rules when path is empty.
func LoadMerger(path string) (*Merger, error) {
	switch path {
	case "":
		return NewMerger(nil), nil
	case DefaultGroupTableName:
		return NewMerger(DefaultGroupTable()), nil
	}

	table, err := LoadGroupTable(path)
	if err != nil {
		return nil, err
	}
	return NewMerger(table), nil
}
