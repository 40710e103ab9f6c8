package main

import (
	"os"

	"github.com/ruleport/ruleport/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
