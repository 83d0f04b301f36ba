// Package config loads layered configuration into typed Go values.
//
// Sources are merged in a fixed order, later sources overriding earlier keys:
//
//  1. config/default (or config/{schema}/default), required
//  2. config/{env} (or config/{schema}/{env}), optional and skipped entirely
//     when the application environment is "production"
//  3. environment variables prefixed with the upper-cased schema name and a
//     double underscore, e.g. MYAPP__DATABASE__HOST sets database.host
//
// Files are looked up without an extension; the first of .toml, .json, .yaml
// and .yml that exists is parsed. Merging and decoding are done with koanf, so
// target structs use `koanf` field tags and may declare required fields with
// `validate:"required"`.
package config
