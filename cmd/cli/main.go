package main

import (
	"os"

	"github.com/akeren/waitlist-relay/cmd/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
