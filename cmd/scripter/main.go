package main

import (
	"os"

	"github.com/msto63/scripter/cmd/scripter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
