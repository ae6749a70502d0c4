package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tagscout-dev/tagscout/internal/cli"
	"github.com/tagscout-dev/tagscout/internal/selector"
)

var version = "0.1.0-dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		// An aborted selection already ended the interaction; any
		// message after it would be noise.
		if !errors.Is(err, selector.ErrAborted) {
			fmt.Fprintf(os.Stderr, "tagscout: %v\n", err)
		}
		os.Exit(1)
	}
}
