// Command wcap-probe reports which entry points of a registry a resolver
// provides: the Vulkan loader, a shared library or the symbols of a running
// process.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
