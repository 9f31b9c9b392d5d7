package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshveil/identity/pkg/identity"
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [identity]",
		Short: "Print an identity's variant, address, fingerprint, and validity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identity.FromString(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("variant:     %s\n", id.Variant())
			fmt.Printf("address:     %s\n", id.Address())
			fmt.Printf("fingerprint: %s\n", id.Fingerprint())
			fmt.Printf("hasPrivate:  %t\n", id.HasPrivate())
			fmt.Printf("valid:       %t\n", id.Validate())
			return nil
		},
	}
	return cmd
}
