package main

import (
	"os"

	"github.com/dmoraes/futjournal/cmd/futjournal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
