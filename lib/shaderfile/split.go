// Package shaderfile reads the single-file shader format: vertex shader
// source, a line holding the sentinel token, then fragment shader source.
package shaderfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Sentinel is the default token separating the two shader stages.
const Sentinel = "arandomstring"

var (
	ErrOpen       = errors.New("could not open shader file")
	ErrNoSentinel = errors.New("shader file has no sentinel")
	ErrNoShader   = errors.New("no shader file configured")
)

// Source is a vertex/fragment pair taken from one file.
type Source struct {
	Vertex   string
	Fragment string
}

// Parse splits content on the first occurrence of sentinel. The newline
// that ends the sentinel line belongs to neither half.
func Parse(content, sentinel string) (Source, error) {
	if sentinel == "" {
		sentinel = Sentinel
	}
	idx := strings.Index(content, sentinel)
	if idx < 0 {
		return Source{}, fmt.Errorf("%w: %q not found", ErrNoSentinel, sentinel)
	}

	rest := content[idx+len(sentinel):]
	if strings.HasPrefix(rest, "\r\n") {
		rest = rest[2:]
	} else if strings.HasPrefix(rest, "\n") {
		rest = rest[1:]
	}

	return Source{
		Vertex:   content[:idx],
		Fragment: rest,
	}, nil
}

// Load reads path and splits it. Failures are logged and returned; the
// returned Source is empty in that case.
func Load(path, sentinel string) (Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("%w %s: %w", ErrOpen, path, err)
		slog.Error(err.Error(), slog.String("module", "shaderfile"))
		return Source{}, err
	}

	src, err := Parse(string(content), sentinel)
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
		slog.Error(err.Error(), slog.String("module", "shaderfile"))
		return Source{}, err
	}

	slog.Debug(fmt.Sprintf("loaded %s (%d bytes vertex, %d bytes fragment)", path, len(src.Vertex), len(src.Fragment)),
		slog.String("module", "shaderfile"))
	return src, nil
}
