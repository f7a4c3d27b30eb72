// Package http implements the HTTP transport layer of the application.
//
// It serves the server-rendered landing page with its embedded static
// assets, a small JSON API (public environment, build version, health) and
// the Prometheus metrics endpoint. Request tracing, access logging, metrics
// and response compression are handled by middleware before requests reach
// the service layer.
package http
