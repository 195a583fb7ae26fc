package main

import (
	"os"

	"github.com/ozgrakkurt/zrak/cmd/zrak/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
