package config

import "go.uber.org/zap"

const (
	// DefaultSchema is the schema used when Options.Schema is empty.
	DefaultSchema = "default"
	// DefaultDir is the configuration root used when Options.Dir is empty.
	DefaultDir = "config"
)

// Options controls which sources a load assembles.
// The zero value loads the default schema from ./config with environment
// variable overrides enabled.
type Options struct {
	// Schema selects a named configuration namespace. Empty means "default".
	Schema string
	// DisableEnvOverride drops the environment variable source.
	DisableEnvOverride bool
	// Dir is the configuration root, relative to the working directory
	// unless absolute. Empty means "config".
	Dir string
	// Logger receives debug output about assembled sources. Nil disables it.
	Logger *zap.Logger
}

// WithSchema returns a copy of o using the given schema.
func (o Options) WithSchema(schema string) Options {
	o.Schema = schema
	return o
}

// WithoutEnvOverride returns a copy of o with environment overrides disabled.
func (o Options) WithoutEnvOverride() Options {
	o.DisableEnvOverride = true
	return o
}

// WithDir returns a copy of o reading files below dir.
func (o Options) WithDir(dir string) Options {
	o.Dir = dir
	return o
}

// WithLogger returns a copy of o that logs through logger.
func (o Options) WithLogger(logger *zap.Logger) Options {
	o.Logger = logger
	return o
}

func (o Options) schema() string {
	if o.Schema == "" {
		return DefaultSchema
	}
	return o.Schema
}

func (o Options) dir() string {
	if o.Dir == "" {
		return DefaultDir
	}
	return o.Dir
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
