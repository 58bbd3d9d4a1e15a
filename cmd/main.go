package main

import (
	"os"

	"github.com/ecfw/fl2tool/cmd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
