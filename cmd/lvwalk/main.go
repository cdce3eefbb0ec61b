// Command lvwalk runs the traversal demos of the lvwalk module.
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
