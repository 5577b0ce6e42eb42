package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xes-gl/xes/lib/config"
	"github.com/xes-gl/xes/lib/shaderfile"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <config file>", os.Args[0])
	}
	cfg, err := config.Parse(os.Args[1])
	if err != nil {
		fmt.Printf("Config invalid: %s\n", err)
		os.Exit(1)
	}

	if cfg.Shader.Path != "" {
		_, err := shaderfile.Load(string(cfg.Shader.Path), cfg.Shader.Sentinel)
		if err != nil {
			fmt.Printf("Shader unusable: %s\n", err)
			os.Exit(1)
		}
	}

	fmt.Print("Config valid!\n\n")

	fmt.Print(cfg)
}
