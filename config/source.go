package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/landmap/camellia/appenv"
)

const (
	keyDelimiter = "."
	envSeparator = "__"
	baseName     = "default"
)

// SourceKind identifies where a Source reads its data from.
type SourceKind int

const (
	// SourceFile reads a configuration file.
	SourceFile SourceKind = iota + 1
	// SourceEnv reads prefixed environment variables.
	SourceEnv
)

func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceEnv:
		return "env"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// Source is one layer of the merged configuration.
type Source struct {
	Kind SourceKind
	// Path is the extensionless file path of a file source.
	Path string
	// Prefix is the variable name prefix of an environment source, e.g. "MYAPP__".
	Prefix string
	// Required file sources fail the load when missing.
	Required bool
}

func (s Source) String() string {
	if s.Kind == SourceEnv {
		return "env:" + s.Prefix + "*"
	}
	return s.Path
}

// Sources returns the ordered sources a load with opts would merge in the
// current application environment.
func Sources(opts Options) []Source {
	return plan(opts, appenv.Current())
}

func plan(opts Options, environment string) []Source {
	schema := opts.schema()

	root := opts.dir()
	if schema != DefaultSchema {
		root = filepath.Join(root, schema)
	}

	sources := []Source{{Kind: SourceFile, Path: filepath.Join(root, baseName), Required: true}}

	if environment != appenv.Production {
		sources = append(sources, Source{Kind: SourceFile, Path: filepath.Join(root, environment)})
	}

	if !opts.DisableEnvOverride {
		sources = append(sources, Source{
			Kind:     SourceEnv,
			Prefix:   strings.ToUpper(schema) + envSeparator,
			Required: true,
		})
	}

	return sources
}

// load merges the source into k. It reports false when an optional file
// is missing or cannot be read.
func (s Source) load(k *koanf.Koanf) (bool, error) {
	if s.Kind == SourceEnv {
		if err := k.Load(env.Provider("", keyDelimiter, envKey(s.Prefix, k.Raw())), nil); err != nil {
			return false, &SourceError{Source: s.String(), Kind: ErrParse, Err: err}
		}
		return true, nil
	}

	path, parser, err := resolveFile(s.Path)
	if err != nil {
		if !s.Required {
			return false, nil
		}
		return false, &SourceError{Source: s.String(), Kind: ErrSourceNotFound, Err: err}
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return s.loadFailure(path, err)
	}

	return true, nil
}

// loadFailure classifies an error from loading the file at path. Read
// failures count as a missing source, parse failures are always fatal.
func (s Source) loadFailure(path string, err error) (bool, error) {
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		return false, &SourceError{Source: path, Kind: ErrParse, Err: err}
	}
	if !s.Required {
		return false, nil
	}
	return false, &SourceError{Source: path, Kind: ErrSourceNotFound, Err: err}
}

// resolveFile finds the file behind an extensionless path and its parser.
func resolveFile(name string) (string, koanf.Parser, error) {
	if parser, ok := ParserFor(filepath.Ext(name)); ok && isFile(name) {
		return name, parser, nil
	}

	for _, f := range formats {
		candidate := name + f.ext
		if isFile(candidate) {
			return candidate, f.parser, nil
		}
	}

	return "", nil, fmt.Errorf("no %s{%s}: %w", name, strings.Join(Extensions(), ","), fs.ErrNotExist)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// envKey maps PREFIX__A__B to "a.b". Names outside the prefix, or with an
// empty segment, map to "" so the provider drops them. Each segment takes
// the spelling of a case-insensitively equal key already in tree, so
// DEFAULT__DBHOST overrides a file key "dbHost" instead of sitting beside it.
func envKey(prefix string, tree map[string]any) func(string) string {
	return func(name string) string {
		if len(name) <= len(prefix) || !strings.EqualFold(name[:len(prefix)], prefix) {
			return ""
		}

		segments := strings.Split(strings.ToLower(name[len(prefix):]), envSeparator)
		if slices.Contains(segments, "") {
			return ""
		}

		node := tree
		for i, segment := range segments {
			if node == nil {
				break
			}
			key, ok := matchKey(node, segment)
			if !ok {
				break
			}
			segments[i] = key
			node, _ = node[key].(map[string]any)
		}
		return strings.Join(segments, keyDelimiter)
	}
}

// matchKey finds the key of node equal to segment ignoring case. An exact
// match wins; otherwise the lexically smallest candidate is used.
func matchKey(node map[string]any, segment string) (string, bool) {
	if _, ok := node[segment]; ok {
		return segment, true
	}

	var candidates []string
	for key := range node {
		if strings.EqualFold(key, segment) {
			candidates = append(candidates, key)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return slices.Min(candidates), true
}
