// Command catalog queries the product catalog from the terminal, using the
// same engine as the HTTP storefront.
//
// Usage:
//
//	catalog search cooler --cat "Reach-In"
//	catalog categories
//	catalog distribution --format json
//	catalog stats
//	catalog link --q cooler --cat Upright
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
