package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT is received, then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It makes the server usable as a background worker.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
