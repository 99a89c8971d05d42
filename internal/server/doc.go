// Package server wires and runs the application's HTTP server.
//
// It provides the server lifecycle: startup, signal handling and graceful
// shutdown once the process is asked to stop.
package server
