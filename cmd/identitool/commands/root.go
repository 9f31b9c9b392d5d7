package commands

import (
	"github.com/spf13/cobra"
)

// Execute builds and runs the identitool root command.
func Execute() error {
	root := &cobra.Command{
		Use:   "identitool",
		Short: "Generate and inspect identity subsystem credentials",
	}

	root.AddCommand(generateCmd(), inspectCmd(), signCmd(), verifyCmd(), agreeCmd(), serveCmd())
	return root.Execute()
}
