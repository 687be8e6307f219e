package main

import (
	"os"

	"github.com/rustyeddy/ibflex/cmd/ibflex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
