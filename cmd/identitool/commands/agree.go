package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshveil/identity/pkg/identity"
)

func agreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agree [self-identity-with-private] [peer-identity]",
		Short: "Derive the shared secret between two identities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			self, err := identity.FromString(args[0])
			if err != nil {
				return fmt.Errorf("parsing self identity: %w", err)
			}
			peer, err := identity.FromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing peer identity: %w", err)
			}

			secret, err := self.Agree(peer)
			if err != nil {
				return err
			}

			fmt.Println(hex.EncodeToString(secret))
			return nil
		},
	}
	return cmd
}
