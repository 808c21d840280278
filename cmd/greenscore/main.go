package main

import (
	"os"

	"github.com/greenscore-dev/greenscore/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
