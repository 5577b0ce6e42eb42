package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xes-gl/xes/lib/shaderfile"
)

func main() {
	sentinel := flag.String("sentinel", shaderfile.Sentinel, "Token separating the vertex and fragment shader")
	out := flag.String("out", "", "Directory to write vertex.glsl and fragment.glsl to (prints both if empty)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("Usage: %s [-sentinel token] [-out dir] <shader file>", os.Args[0])
	}

	src, err := shaderfile.Load(flag.Arg(0), *sentinel)
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		fmt.Printf("// vertex\n%s\n// fragment\n%s", src.Vertex, src.Fragment)
		return
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("could not create %s: %s", *out, err)
	}
	for name, content := range map[string]string{
		"vertex.glsl":   src.Vertex,
		"fragment.glsl": src.Fragment,
	} {
		path := filepath.Join(*out, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			log.Fatalf("could not write %s: %s", path, err)
		}
		log.Printf("wrote %s (%d bytes)", path, len(content))
	}
}
