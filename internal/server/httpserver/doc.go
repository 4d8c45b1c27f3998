// Package httpserver serves the hhbook local JSON API.
//
// Routes are mounted on a chi router:
//
//   - /api/v1/*: document, backup, file and system endpoints (see handler)
//   - /health: liveness probe
//   - /metrics: Prometheus exposition
//
// Every request gets a ULID request ID, an access log line and panic
// recovery. CORS is limited to the configured UI origins.
package httpserver
