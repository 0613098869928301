// main is the entry point for the farescope CLI.
package main

import (
	"fmt"
	"os"

	"github.com/farescope/farescope/cmd"
	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/internal/resultstore"
)

func main() {
	os.Exit(run())
}

// run wires the persistence manager into the command tree and executes it.
// Deferred cleanup must run before the process exits, so the exit code is
// returned instead of calling os.Exit directly.
func run() int {
	cmd.SetStoreManager(resultstore.Manager)

	defer resultstore.CloseStores()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Failed to stop profiling", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		// Errors are silenced in the command tree, so report them here.
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
