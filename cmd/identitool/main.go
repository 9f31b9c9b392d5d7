// Command identitool is a cobra-based CLI over the core identity API:
// generate, inspect, sign, verify, agree, and serve (the registry demo
// service).
package main

import (
	"os"

	"github.com/meshveil/identity/cmd/identitool/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
