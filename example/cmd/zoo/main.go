// Command zoo runs the keeper demonstrations and benchmarks them.
//
//	zoo demo --duration 10s
//	zoo bench --iterations 100000 --workers 8
package main

import (
	"context"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// Set GOMAXPROCS to match the container CPU quota.
	_, _ = maxprocs.Set()

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
