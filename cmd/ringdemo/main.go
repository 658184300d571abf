// Command ringdemo renders and previews arcprogress rings.
//
// Usage:
//
//	ringdemo render --config ring.yaml --frames 60 --out frames/
//	ringdemo view --config ring.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
