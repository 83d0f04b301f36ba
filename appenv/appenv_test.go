package appenv

import (
	"os"
	"testing"
)

func unsetAppEnv(t *testing.T) {
	t.Helper()
	t.Setenv(Variable, "")
	if err := os.Unsetenv(Variable); err != nil {
		t.Fatalf("unset %s: %v", Variable, err)
	}
}

func TestCurrentReturnsValueVerbatim(t *testing.T) {
	for _, value := range []string{"development", "production", "testing", "Staging", " qa ", "PRODUCTION"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv(Variable, value)
			if got := Current(); got != value {
				t.Fatalf("expected %q, got %q", value, got)
			}
		})
	}
}

func TestCurrentFallsBackWhenUnset(t *testing.T) {
	unsetAppEnv(t)

	if got := Current(); got != Fallback {
		t.Fatalf("expected fallback %q, got %q", Fallback, got)
	}
	if IsDevelopment() == IsProduction() {
		t.Fatalf("expected exactly one of IsDevelopment/IsProduction to be true")
	}
}

func TestCurrentTreatsEmptyAsUnset(t *testing.T) {
	t.Setenv(Variable, "")

	if got := Current(); got != Fallback {
		t.Fatalf("expected fallback %q, got %q", Fallback, got)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		value       string
		development bool
		production  bool
	}{
		{value: "development", development: true},
		{value: "production", production: true},
		{value: "staging"},
		{value: "testing"},
		{value: "Production"},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(Variable, tc.value)
			if got := IsDevelopment(); got != tc.development {
				t.Fatalf("IsDevelopment() = %v, want %v", got, tc.development)
			}
			if got := IsProduction(); got != tc.production {
				t.Fatalf("IsProduction() = %v, want %v", got, tc.production)
			}
		})
	}
}

func TestCurrentIsNotCached(t *testing.T) {
	t.Setenv(Variable, "first")
	if got := Current(); got != "first" {
		t.Fatalf("expected first, got %q", got)
	}

	t.Setenv(Variable, "second")
	if got := Current(); got != "second" {
		t.Fatalf("expected second, got %q", got)
	}
}
