package main

import (
	"os"

	"github.com/domuslabs/cashlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
