// Package main is the entry point for the strength command-line checker.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage returns the text printed for a failed command.
func errorMessage(err error) string {
	if errors.Is(err, errEmptyPassword) {
		return emptyPasswordMessage
	}
	return err.Error()
}
