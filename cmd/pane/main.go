// Command pane lays out widget trees described in YAML.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/pane/cmd/pane/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
