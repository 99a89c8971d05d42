// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envgen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/MKhiriev/go-appenv/env"
)

// FileName is the name of the generated file inside each package directory.
const FileName = "env_gen.go"

// Options controls where and how packages are generated.
type Options struct {
	// OutputDir receives one directory per package.
	OutputDir string
	// PrivatePackage is the package name of the static private namespace.
	PrivatePackage string
	// PublicPackage is the package name of the static public namespace.
	PublicPackage string
}

func (o Options) validate() error {
	for _, name := range []string{o.PrivatePackage, o.PublicPackage} {
		if !token.IsIdentifier(name) {
			return fmt.Errorf("%w: %q", ErrInvalidPackageName, name)
		}
	}
	if o.PrivatePackage == o.PublicPackage {
		return ErrSamePackage
	}
	return nil
}

// File is one generated Go source file.
type File struct {
	Path       string
	Package    string
	Visibility env.Visibility
	Source     []byte
	// Keys lists the variables rendered as constants.
	Keys []string
	// Skipped lists the variables left out because their names are not
	// exported Go identifiers.
	Skipped []string
}

type constant struct {
	Name  string
	Value string
}

type fileData struct {
	Package   string
	Prefix    string
	Private   bool
	Constants []constant
}

var fileTemplate = template.Must(template.New("env").Parse(`// Code generated by envgen. DO NOT EDIT.

{{ if .Private -}}
// Package {{ .Package }} holds the static private environment captured at
// build time. Variables starting with {{ printf "%q" .Prefix }} are excluded.
// Do not import this package from code that is shipped to clients.
{{- else -}}
// Package {{ .Package }} holds the static public environment captured at
// build time: every variable starting with {{ printf "%q" .Prefix }}.
{{- end }}
package {{ .Package }}
{{ if .Constants }}
const (
{{- range .Constants }}
	{{ .Name }} = {{ .Value }}
{{- end }}
)
{{ end -}}
`))

// Generate renders the static namespaces of snapshot. It does not touch the
// file system.
func Generate(snapshot *env.Snapshot, opts Options) ([]File, error) {
	if snapshot == nil {
		return nil, ErrNilSnapshot
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	targets := []struct {
		pkg string
		vis env.Visibility
	}{
		{opts.PrivatePackage, env.Private},
		{opts.PublicPackage, env.Public},
	}

	files := make([]File, 0, len(targets))
	for _, target := range targets {
		f, err := render(snapshot, target.pkg, target.vis)
		if err != nil {
			return nil, err
		}
		f.Path = filepath.Join(opts.OutputDir, target.pkg, FileName)
		files = append(files, f)
	}
	return files, nil
}

func render(snapshot *env.Snapshot, pkg string, vis env.Visibility) (File, error) {
	ns := snapshot.Namespace(env.Static, vis)
	keys := ns.Keys()

	data := fileData{
		Package:   pkg,
		Prefix:    snapshot.Prefixes().Public,
		Private:   vis == env.Private,
		Constants: make([]constant, 0, len(keys)),
	}
	for _, k := range keys {
		data.Constants = append(data.Constants, constant{Name: k, Value: strconv.Quote(ns.Value(k))})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return File{}, fmt.Errorf("error rendering %s package: %w", vis, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return File{}, fmt.Errorf("error formatting %s package: %w", vis, err)
	}

	return File{
		Package:    pkg,
		Visibility: vis,
		Source:     src,
		Keys:       keys,
		Skipped:    snapshot.Skipped(vis),
	}, nil
}
