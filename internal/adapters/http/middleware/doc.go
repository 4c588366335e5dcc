// Package middleware provides the inbound request pipeline of the API.
//
// cmd/server installs the global chain in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout
//
// and the router adds AgentID in front of every /api/v1 route. Logs, spans
// and server metrics are labeled with the chi route pattern rather than the
// raw path, so transaction and action ids never become label values.
package middleware
