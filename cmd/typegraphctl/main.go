// Command typegraphctl drives the type resolution core over the scenario
// fixtures, printing a resolution report. It exists as a demonstration and
// debugging surface for the library at the module root; it is not the
// library's own interface.
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
