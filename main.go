package main

import (
	"fmt"
	"os"

	"besthair/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "besthair:", err)
		os.Exit(1)
	}
}
