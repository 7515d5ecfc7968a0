// Package server exposes benchmark results over HTTP while the tool runs.
//
// The server is optional and read-only. It keeps finished reports and the
// most recent display frame in memory for the lifetime of the process;
// nothing is persisted.
//
// # Endpoints
//
//   - GET /            : list of endpoints
//   - GET /healthz     : liveness plus the harness state
//   - GET /reports     : every finished report, oldest first
//   - GET /reports/{id}: one report by run ID
//   - GET /frame/latest: the last composed display frame as PNG
//
// Errors are returned as JSON objects of the form:
//
//	{"error": "not_found", "message": "no report with id ..."}
//
// # Thread Safety
//
// All Server methods are safe for concurrent use; the benchmark loop
// publishes frames and reports while HTTP handlers read them.
package server
