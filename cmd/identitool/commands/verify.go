package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshveil/identity/pkg/identity"
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [identity] [data] [hex-signature]",
		Short: "Verify a hex-encoded signature over data against an identity's public key",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identity.FromString(args[0])
			if err != nil {
				return err
			}

			sig, err := hex.DecodeString(args[2])
			if err != nil {
				return fmt.Errorf("decoding signature: %w", err)
			}

			if id.Verify([]byte(args[1]), sig) {
				fmt.Println("ok")
				return nil
			}
			return fmt.Errorf("signature invalid")
		},
	}
	return cmd
}
