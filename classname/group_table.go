// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classname

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Group is a set of mutually exclusive classes.
type Group struct {
	// ID names the group, e.g. "padding".
	ID string `yaml:"id"`

	// Classes lists exact class names, e.g. "block" or "flex".
	Classes []string `yaml:"classes"`

	// Prefixes lists class name prefixes, e.g. "p-" matches "p-2" and "p-[3px]".
	Prefixes []string `yaml:"prefixes"`

	// Conflicts lists groups that a class of this group overrides when it
	// appears later, e.g. "padding" overrides "padding-x".
	Conflicts []string `yaml:"conflicts"`
}

type groupTableFile struct {
	Groups []Group `yaml:"groups"`
}

// GroupTable is a [Resolver] backed by an explicit table of class groups.
//
// Two tokens conflict when their base classes belong to the same group (or
// the later token's group lists the earlier one in Conflicts) and they carry
// the same variant modifiers and important flag. Tokens that belong to no
// group only conflict with identical tokens.
type GroupTable struct {
	exact     map[string]string
	prefixes  []prefixEntry
	conflicts map[string][]string
}

type prefixEntry struct {
	prefix string
	group  string
}

// NewGroupTable validates groups and builds a table from them.
func NewGroupTable(groups ...Group) (*GroupTable, error) {
	t := &GroupTable{
		exact:     make(map[string]string),
		conflicts: make(map[string][]string),
	}

	for _, g := range groups {
		if g.ID == "" || len(g.Classes)+len(g.Prefixes) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyGroup, g.ID)
		}
		if _, ok := t.conflicts[g.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGroup, g.ID)
		}
		t.conflicts[g.ID] = slices.Clone(g.Conflicts)

		for _, c := range g.Classes {
			if other, ok := t.exact[c]; ok {
				return nil, fmt.Errorf("%w: %q in %q and %q", ErrAmbiguousClass, c, other, g.ID)
			}
			t.exact[c] = g.ID
		}
		for _, p := range g.Prefixes {
			for _, e := range t.prefixes {
				if e.prefix == p {
					return nil, fmt.Errorf("%w: %q in %q and %q", ErrAmbiguousClass, p, e.group, g.ID)
				}
			}
			t.prefixes = append(t.prefixes, prefixEntry{prefix: p, group: g.ID})
		}
	}

	for id, conflicts := range t.conflicts {
		for _, c := range conflicts {
			if _, ok := t.conflicts[c]; !ok {
				return nil, fmt.Errorf("%w: %q listed by %q", ErrUnknownConflict, c, id)
			}
		}
	}

	// longest prefix first
	slices.SortStableFunc(t.prefixes, func(a, b prefixEntry) int {
		return len(b.prefix) - len(a.prefix)
	})

	return t, nil
}

// LoadGroupTable reads a YAML group table:
//
//	groups:
//	  - id: padding
//	    prefixes: ["p-"]
//	    conflicts: [padding-x, padding-y]
//	  - id: padding-x
//	    prefixes: ["px-"]
func LoadGroupTable(path string) (*GroupTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading group table: %w", err)
	}

	var file groupTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error decoding group table: %w", err)
	}

	return NewGroupTable(file.Groups...)
}

// GroupOf returns the group id of class. Variant modifiers, the important
// flag and a leading '-' (negative values) are ignored.
func (t *GroupTable) GroupOf(class string) (string, bool) {
	_, _, base := splitToken(class)
	return t.groupOfBase(base)
}

func (t *GroupTable) groupOfBase(base string) (string, bool) {
	base = strings.TrimPrefix(base, "-")
	if g, ok := t.exact[base]; ok {
		return g, true
	}
	for _, e := range t.prefixes {
		if strings.HasPrefix(base, e.prefix) && len(base) > len(e.prefix) {
			return e.group, true
		}
	}
	return "", false
}

// Resolve implements [Resolver].
func (t *GroupTable) Resolve(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	kept := make([]string, 0, len(tokens))

	// walk backwards so later tokens claim their group first
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		modifiers, important, base := splitToken(token)

		group, ok := t.groupOfBase(base)
		if !ok {
			key := "token\x00" + token
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, token)
			continue
		}

		scope := variantKey(modifiers, important)
		key := scope + group
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		for _, c := range t.conflicts[group] {
			seen[scope+c] = struct{}{}
		}
		kept = append(kept, token)
	}

	slices.Reverse(kept)
	return kept
}

func variantKey(modifiers []string, important bool) string {
	sorted := slices.Clone(modifiers)
	slices.Sort(sorted)
	key := strings.Join(sorted, ":")
	if important {
		key += "!"
	}
	return key + "\x00"
}

// splitToken splits "md:hover:!p-2" into modifiers [md hover], important
// true and base "p-2". Colons inside brackets, as in "[&>*]:p-2" or
// "bg-[url(a:b)]", do not split.
func splitToken(token string) (modifiers []string, important bool, base string) {
	depth := 0
	start := 0
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				modifiers = append(modifiers, token[start:i])
				start = i + 1
			}
		}
	}
	base = token[start:]

	if strings.HasPrefix(base, "!") {
		important = true
		base = base[1:]
	} else if strings.HasSuffix(base, "!") {
		important = true
		base = base[:len(base)-1]
	}
	return modifiers, important, base
}
