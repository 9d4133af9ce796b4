package main

import (
	"os"

	"github.com/genesis-engine/genesis-backend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
