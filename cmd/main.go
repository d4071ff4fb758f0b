/*
 *  main.go
 *  cmd
 */

package main

import (
	"os"

	logging "github.com/op/go-logging"
	"github.com/reconlab/dtlmedian"
)

// main is the entrypoint for the entire program, routes to commands
func main() {
	logging.SetBackend(dtlmedian.BackendFormatter)
	if err := dtlmedian.Execute(); err != nil {
		os.Exit(1)
	}
}
