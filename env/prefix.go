package env

import (
	"strings"
)

// DefaultPublicPrefix marks variables that are safe to expose to browsers.
const DefaultPublicPrefix = "PUBLIC_"

// Visibility tells whether a namespace may be exposed to client code.
type Visibility int

const (
	Private Visibility = iota
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "public"
	}
	return "private"
}

// Resolution tells when a namespace is resolved.
type Resolution int

const (
	// Static values are captured at build time.
	Static Resolution = iota
	// Dynamic values are read when the process starts.
	Dynamic
)

func (r Resolution) String() string {
	if r == Dynamic {
		return "dynamic"
	}
	return "static"
}

// Prefixes configures how variable names are split between visibilities.
//
// A variable is public when its name starts with Public. It is private when
// it is not public and, if Private is set, its name starts with Private.
// Variables that match neither are dropped.
type Prefixes struct {
	Public  string
	Private string
}

// DefaultPrefixes returns the public prefix "PUBLIC_" and no private prefix.
func DefaultPrefixes() Prefixes {
	return Prefixes{Public: DefaultPublicPrefix}
}

// Validate reports configuration mistakes that would make the split
// meaningless.
func (p Prefixes) Validate() error {
	if p.Public == "" {
		return ErrEmptyPublicPrefix
	}
	if p.Private != "" && strings.HasPrefix(p.Private, p.Public) {
		return ErrPrefixConflict
	}
	return nil
}

// IsPublic reports whether key belongs to the public namespace.
func (p Prefixes) IsPublic(key string) bool {
	return strings.HasPrefix(key, p.Public)
}

// IsPrivate reports whether key belongs to the private namespace.
func (p Prefixes) IsPrivate(key string) bool {
	return !p.IsPublic(key) && strings.HasPrefix(key, p.Private)
}

// Match reports whether key belongs to the namespace with visibility v.
func (p Prefixes) Match(key string, v Visibility) bool {
	if v == Public {
		return p.IsPublic(key)
	}
	return p.IsPrivate(key)
}

// Filter returns the variables of all that belong to visibility v.
func Filter(all map[string]string, p Prefixes, v Visibility) Mapping {
	out := make(map[string]string)
	for k, val := range all {
		if p.Match(k, v) {
			out[k] = val
		}
	}
	return Mapping{values: out}
}
