package main

import (
	"os"

	"github.com/socralabs/socra/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
