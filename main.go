package main

import (
	"os"

	"github.com/venturelab/venturesim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
