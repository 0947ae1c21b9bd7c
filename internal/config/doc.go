// Package config loads, normalizes, and validates mqctl configuration data.
//
// The file is optional TOML. It carries logging preferences and the defaults
// applied to every invocation before command-line options are parsed
// (creation mode, blocking behaviour, send priority, output format).
// Environment variables MQCTL_CONFIG, MQCTL_LOG_LEVEL and MQCTL_LOG_FORMAT
// override the file.
//
// Configuration is read-only input: mqctl never writes it back, apart from
// the explicit `config init` scaffold.
package config
