package env

import "go/token"

// IsExportedIdentifier reports whether name can be used as an exported Go
// constant name. Only such variables appear in the static namespaces.
func IsExportedIdentifier(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}
