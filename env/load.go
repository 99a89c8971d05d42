// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// LoadEnv reads source once and keeps only the variables whose name starts
// with prefix. An empty prefix keeps everything.
func LoadEnv(ctx context.Context, source Source, prefix string) (Mapping, error) {
	if source == nil {
		return Mapping{}, ErrNilSource
	}

	all, err := source.Load(ctx)
	if err != nil {
		return Mapping{}, fmt.Errorf("%w %q: %w", ErrLoadingSource, source.Name(), err)
	}

	for k := range all {
		if !strings.HasPrefix(k, prefix) {
			delete(all, k)
		}
	}
	return Mapping{values: all}, nil
}

// Snapshot holds the four environment namespaces produced by a single read
// of a [Source]. It is never modified after [Load] returns.
type Snapshot struct {
	prefixes Prefixes
	source   string

	staticPrivate  Mapping
	staticPublic   Mapping
	dynamicPrivate Mapping
	dynamicPublic  Mapping

	skippedPrivate []string
	skippedPublic  []string
}

// Load reads source once and splits the result into the four namespaces.
//
// Dynamic namespaces hold every variable matching their visibility. Static
// namespaces hold only the variables whose names are exported Go identifiers;
// the others are reported by [Snapshot.Skipped].
func Load(ctx context.Context, source Source, prefixes Prefixes) (*Snapshot, error) {
	if err := prefixes.Validate(); err != nil {
		return nil, err
	}

	all, err := LoadEnv(ctx, source, "")
	if err != nil {
		return nil, err
	}

	s := &Snapshot{
		prefixes:       prefixes,
		source:         source.Name(),
		dynamicPrivate: Filter(all.values, prefixes, Private),
		dynamicPublic:  Filter(all.values, prefixes, Public),
	}
	s.staticPrivate, s.skippedPrivate = staticView(s.dynamicPrivate)
	s.staticPublic, s.skippedPublic = staticView(s.dynamicPublic)

	return s, nil
}

func staticView(m Mapping) (Mapping, []string) {
	out := make(map[string]string, m.Len())
	var skipped []string
	for k, v := range m.values {
		if !IsExportedIdentifier(k) {
			skipped = append(skipped, k)
			continue
		}
		out[k] = v
	}
	slices.Sort(skipped)
	return Mapping{values: out}, skipped
}

// Namespace returns the mapping for the given resolution and visibility.
func (s *Snapshot) Namespace(r Resolution, v Visibility) Mapping {
	switch {
	case r == Static && v == Private:
		return s.staticPrivate
	case r == Static && v == Public:
		return s.staticPublic
	case r == Dynamic && v == Private:
		return s.dynamicPrivate
	default:
		return s.dynamicPublic
	}
}

// StaticPrivate returns the build-time private namespace.
func (s *Snapshot) StaticPrivate() Mapping { return s.staticPrivate }

// StaticPublic returns the build-time public namespace.
func (s *Snapshot) StaticPublic() Mapping { return s.staticPublic }

// DynamicPrivate returns the runtime private namespace.
func (s *Snapshot) DynamicPrivate() Mapping { return s.dynamicPrivate }

// DynamicPublic returns the runtime public namespace.
func (s *Snapshot) DynamicPublic() Mapping { return s.dynamicPublic }

// Prefixes returns the prefixes the snapshot was split with.
func (s *Snapshot) Prefixes() Prefixes { return s.prefixes }

// SourceName returns the name of the source the snapshot was read from.
func (s *Snapshot) SourceName() string { return s.source }

// Skipped returns the variable names of visibility v that were left out of
// the static namespace because they are not exported Go identifiers.
func (s *Snapshot) Skipped(v Visibility) []string {
	if v == Public {
		return slices.Clone(s.skippedPublic)
	}
	return slices.Clone(s.skippedPrivate)
}
