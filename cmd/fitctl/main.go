package main

import (
	"os"

	"github.com/r3fitness/fitctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
