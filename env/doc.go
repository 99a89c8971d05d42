// Package env loads environment variables for the application and splits them
// into four namespaces along two axes:
//
//   - resolution: [Static] values are captured at build time and rendered as Go
//     constants by the envgen tool, [Dynamic] values are read once at process
//     start;
//   - visibility: [Public] values start with the configured public prefix
//     (default "PUBLIC_") and may be shipped to browsers, [Private] values
//     never leave the server.
//
// The main entry points are [LoadEnv] for a single prefix-filtered read and
// [Load], which produces an immutable [Snapshot] holding all four namespaces.
package env
