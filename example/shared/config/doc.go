// Package config loads the settings of the zoo command and builds what they describe:
// the slog logger and, when enabled, OpenTelemetry providers exporting over OTLP gRPC.
//
// Settings come from defaults, an optional YAML file and ZOO_ prefixed environment
// variables, in increasing order of precedence. Command line flags bound by the caller
// override all of them.
package config
