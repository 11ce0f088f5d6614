// Command personsvc runs the persons HTTP service.
//
// Usage:
//
//	personsvc [serve] [--addr :8080]
//	personsvc schema
//
// Configuration is read from environment variables, see internal/config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "personsvc:", err)
		os.Exit(1)
	}
}
