// Command cinegoose serves the International Goose Movie Database and
// manages its schema and sample data, locally or on a remote D1 database.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	// Version information (set by build)
	Version = "dev"
	Commit  = "unknown"
)

// errReported marks failures whose message has already been printed.
var errReported = errors.New("reported")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		}
		os.Exit(1)
	}
}
