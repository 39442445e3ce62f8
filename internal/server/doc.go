// Package server wires and runs the application's HTTP server.
//
// It provides startup, SIGINT/SIGTERM/SIGQUIT handling and graceful shutdown
// that lets in-flight requests finish.
package server
