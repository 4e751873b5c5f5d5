package main

import (
	"os"

	"github.com/hasbyte1/go-array-drills/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd(cli.DefaultConfig())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
