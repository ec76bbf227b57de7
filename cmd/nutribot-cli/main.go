package main

import (
	"fmt"
	"os"

	"github.com/aishuu11/hackathon-2025/cmd/nutribot-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
