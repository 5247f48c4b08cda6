// Package timeouts defines the HTTP server timeouts shared by the web
// service and its tests.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown bounds the final span flush on exit.
const TelemetryShutdown = 5 * time.Second
