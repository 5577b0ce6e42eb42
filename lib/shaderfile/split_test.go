package shaderfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "basic.shader")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSplitsAroundSentinel(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"empty halves", "", ""},
		{"simple", "vertex\n", "fragment\n"},
		{"no trailing newline on a", "vertex", "fragment"},
		{"multiline", "#version 330\nlayout(location = 0) in vec2 pos;\nvoid main(){}\n", "#version 330\nout vec4 c;\nvoid main(){ c = vec4(1); }\n"},
		{"b contains blank lines", "a\n", "\n\nb\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.a+Sentinel+"\n"+c.b, Sentinel)
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if got.Vertex != c.a || got.Fragment != c.b {
				t.Fatalf("Parse = (%q, %q), want (%q, %q)", got.Vertex, got.Fragment, c.a, c.b)
			}
		})
	}
}

func TestParseCRLF(t *testing.T) {
	got, err := Parse("v\r\n"+Sentinel+"\r\nf\r\n", Sentinel)
	if err != nil {
		t.Fatal(err)
	}
	if got.Vertex != "v\r\n" || got.Fragment != "f\r\n" {
		t.Fatalf("Parse = (%q, %q)", got.Vertex, got.Fragment)
	}
}

func TestParseSentinelAtEnd(t *testing.T) {
	got, err := Parse("v\n"+Sentinel, Sentinel)
	if err != nil {
		t.Fatal(err)
	}
	if got.Vertex != "v\n" || got.Fragment != "" {
		t.Fatalf("Parse = (%q, %q)", got.Vertex, got.Fragment)
	}
}

func TestParseCustomSentinel(t *testing.T) {
	got, err := Parse("v\n---\nf\n", "---")
	if err != nil {
		t.Fatal(err)
	}
	if got.Vertex != "v\n" || got.Fragment != "f\n" {
		t.Fatalf("Parse = (%q, %q)", got.Vertex, got.Fragment)
	}
}

func TestParseMissingSentinel(t *testing.T) {
	got, err := Parse("#version 330\nvoid main(){}\n", Sentinel)
	if !errors.Is(err, ErrNoSentinel) {
		t.Fatalf("error = %v, want ErrNoSentinel", err)
	}
	if got != (Source{}) {
		t.Fatalf("expected empty source, got %+v", got)
	}
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, "#version 330\nvoid main(){}\narandomstring\n#version 330\nvoid main(){}\n")

	got, err := Load(path, Sentinel)
	if err != nil {
		t.Fatal(err)
	}
	want := "#version 330\nvoid main(){}\n"
	if got.Vertex != want {
		t.Errorf("vertex = %q, want %q", got.Vertex, want)
	}
	if got.Fragment != want {
		t.Errorf("fragment = %q, want %q", got.Fragment, want)
	}
}

func TestLoadNonexistent(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "missing.shader"), Sentinel)
	if !errors.Is(err, ErrOpen) {
		t.Fatalf("error = %v, want ErrOpen", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want it to wrap os.ErrNotExist", err)
	}
	if got != (Source{}) {
		t.Fatalf("expected empty source, got %+v", got)
	}
}

func TestLoadWithoutSentinel(t *testing.T) {
	path := writeFile(t, "void main(){}\n")
	got, err := Load(path, Sentinel)
	if !errors.Is(err, ErrNoSentinel) {
		t.Fatalf("error = %v, want ErrNoSentinel", err)
	}
	if got != (Source{}) {
		t.Fatalf("expected empty source, got %+v", got)
	}
}
