// Command polysolve solves polynomial equations of degree at most two.
//
// Usage:
//
//	polysolve solve "x^2 + 2x + 1 = 0"
//	polysolve serve --addr :8080
package main

import (
	"os"

	"github.com/njchilds90/polysolve/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
