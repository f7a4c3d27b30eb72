// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: listening, serving with request and header
// timeouts, and a graceful shutdown bounded by the configured shutdown
// timeout once the run context is cancelled.
package server
