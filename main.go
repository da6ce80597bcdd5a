package main

import (
	"os"

	"github.com/Zachkp/pillar-dev/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
