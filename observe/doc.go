// Package observe provides telemetry for the state store: structured JSON
// logging, OpenTelemetry metrics and tracing, and a decorator that
// instruments a collection without changing its semantics.
package observe
