// Command wcap-gen renders a registry YAML file into Go capability tables.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vietanhduong/wcap/pkg/registry"
)

func main() {
	registryPath := flag.String("registry", "", "Path to the registry YAML")
	output := flag.String("output", "", "Output Go file (stdout when empty)")
	flag.Parse()

	if *registryPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: wcap-gen -registry <path> [-output <file>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*registryPath, *output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(registryPath, output string) error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}
	code, err := Generate(reg)
	if err != nil {
		return fmt.Errorf("generating tables: %w", err)
	}
	if output == "" {
		_, err = os.Stdout.Write(code)
		return err
	}
	if err := os.WriteFile(output, code, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Printf("  generated %s\n", output)
	return nil
}
