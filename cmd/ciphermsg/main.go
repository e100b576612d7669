package main

import (
	"os"

	"ciphermsg/cmd/ciphermsg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
