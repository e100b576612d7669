package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the public key fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requirePassphrase(); err != nil {
				return err
			}
			fp, err := opts.wire.Identity.Fingerprint(opts.passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	return cmd
}
