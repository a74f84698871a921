package main

import (
	"os"

	"github.com/migliorelli/uconv/cmd/uconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
