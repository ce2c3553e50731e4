package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/mongotypes/cmd/mongotypes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrCheckFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
