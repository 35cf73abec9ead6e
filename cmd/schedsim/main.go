package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/me/schedsim/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		// Usage errors already printed their message to stdout.
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
