package config

import (
	"slices"
	"testing"
)

func TestParserFor(t *testing.T) {
	for _, name := range []string{"toml", ".toml", "json", "yaml", ".YML", "yml"} {
		if _, ok := ParserFor(name); !ok {
			t.Fatalf("expected parser for %q", name)
		}
	}
	for _, name := range []string{"", "ini", ".xml"} {
		if _, ok := ParserFor(name); ok {
			t.Fatalf("unexpected parser for %q", name)
		}
	}
}

func TestExtensionsOrder(t *testing.T) {
	want := []string{".toml", ".json", ".yaml", ".yml"}
	if got := Extensions(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestYAMLParserNestedMaps(t *testing.T) {
	tree, err := yamlParser{}.Unmarshal([]byte("server:\n  port: 8080\n"))
	if err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	server, ok := tree["server"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", tree["server"])
	}
	if server["port"] != 8080 {
		t.Fatalf("expected port 8080, got %v", server["port"])
	}
}

func TestYAMLParserEmptyDocument(t *testing.T) {
	tree, err := yamlParser{}.Unmarshal(nil)
	if err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if len(tree) != 0 {
		t.Fatalf("expected empty tree, got %v", tree)
	}
}

func TestYAMLParserMarshal(t *testing.T) {
	out, err := yamlParser{}.Marshal(map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(out) != "a: 1\n" {
		t.Fatalf("unexpected output %q", out)
	}
}
