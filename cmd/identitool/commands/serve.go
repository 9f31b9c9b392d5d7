package commands

import (
	"github.com/spf13/cobra"

	"github.com/meshveil/identity/pkg/registry"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the registry demo HTTP/WS service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return registry.NewServer().ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}
