package main

import (
	"fmt"
	"runtime"

	"github.com/databoard/databoard/pkg/defaults"
)

// runVersion prints version and build information.
func runVersion() {
	fmt.Printf("%s v%s\n", defaults.ToolName, defaults.Version)
	fmt.Printf("  go:  %s\n", runtime.Version())
	fmt.Printf("  os:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
