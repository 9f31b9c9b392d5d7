package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshveil/identity/pkg/identity"
)

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [identity] [data]",
		Short: "Sign data with an identity's private key, printing the hex signature",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identity.FromString(args[0])
			if err != nil {
				return err
			}

			sig := make([]byte, identity.SignatureBufferSize)
			n := id.Sign([]byte(args[1]), sig)
			if n == 0 {
				return fmt.Errorf("signing failed (missing private key or undersized buffer)")
			}

			fmt.Println(hex.EncodeToString(sig[:n]))
			return nil
		},
	}
	return cmd
}
