// Package http implements the HTTP transport layer of the application.
//
// It serves the public part of the runtime environment to browsers, both as
// an ES module and as JSON, and exposes the class-name merge utility. Request
// tracing, access logging and response compression are handled by middleware
// before requests reach the service layer. Private variables never leave the
// process through this package.
package http
