package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

type format struct {
	ext    string
	parser koanf.Parser
}

// formats lists supported file extensions in lookup order.
var formats = []format{
	{ext: ".toml", parser: toml.Parser()},
	{ext: ".json", parser: json.Parser()},
	{ext: ".yaml", parser: yamlParser{}},
	{ext: ".yml", parser: yamlParser{}},
}

// Extensions returns the supported file extensions in the order they are tried.
func Extensions() []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		out = append(out, f.ext)
	}
	return out
}

// ParserFor returns the parser for a format name or extension, e.g. "yaml" or ".yml".
func ParserFor(name string) (koanf.Parser, bool) {
	if name == "" {
		return nil, false
	}
	ext := strings.ToLower(name)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, f := range formats {
		if f.ext == ext {
			return f.parser, true
		}
	}
	return nil, false
}

// yamlParser implements koanf.Parser on top of gopkg.in/yaml.v3.
type yamlParser struct{}

func (yamlParser) Unmarshal(data []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (yamlParser) Marshal(tree map[string]any) ([]byte, error) {
	return yaml.Marshal(tree)
}
