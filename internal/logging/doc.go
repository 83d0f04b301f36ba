// Package logging builds the zap loggers used by the camellia command.
package logging
