package main

import (
	"os"

	"github.com/subvet/subvet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
