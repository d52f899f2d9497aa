// Package main provides ado, a command-line client for Azure DevOps
// repositories, work items and builds.
package main

import (
	"fmt"
	"os"

	"github.com/LtttAZ/fus/internal/cli"
)

func main() {
	app, err := cli.DefaultApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	os.Exit(app.Run(os.Stdin, os.Stdout, os.Stderr, os.Args))
}
