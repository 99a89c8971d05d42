// Package envgen renders the static environment namespaces as Go packages.
//
// Every variable of the static private and static public namespaces becomes
// an untyped string constant, so the Go compiler can inline it and drop
// branches that depend on it. The public package may be committed. The
// private package holds server-only values, so [Write] makes it owner-only and
// drops a .gitignore next to it; produce it with `go generate` before a build
// and set a private prefix to keep unrelated machine variables out of it.
// Both must be regenerated when the .env files change (see [Watcher]).
package envgen
