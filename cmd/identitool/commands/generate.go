package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshveil/identity/pkg/identity"
)

func generateCmd() *cobra.Command {
	var variantFlag int
	var includePrivate bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Mint a new identity and print its text form",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := identity.Variant(variantFlag)
			if !v.Valid() {
				return fmt.Errorf("unsupported variant %d", variantFlag)
			}

			id, err := identity.Generate(v)
			if err != nil {
				return err
			}

			if includePrivate {
				fmt.Println(id.String())
			} else {
				fmt.Println(id.PublicString())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&variantFlag, "variant", "v", 0, "identity variant (0 = C25519, 1 = P384)")
	cmd.Flags().BoolVarP(&includePrivate, "private", "p", false, "include private key material in the output")
	return cmd
}
