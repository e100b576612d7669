package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ciphermsg/internal/crypto"
)

func keygenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and store it securely",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requirePassphrase(); err != nil {
				return err
			}
			kp, fp, err := opts.wire.Identity.GenerateKeyPair(opts.passphrase)
			if err != nil {
				return err
			}
			defer crypto.Wipe(kp.Private)
			fmt.Fprintf(cmd.OutOrStdout(), "Key pair created (%s).\nFingerprint: %s\nPublic key: %s\n", kp.Curve, fp, kp.Public)
			return nil
		},
	}
}

func pubkeyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key as hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requirePassphrase(); err != nil {
				return err
			}
			kp, err := opts.wire.Identity.LoadKeyPair(opts.passphrase)
			if err != nil {
				return err
			}
			crypto.Wipe(kp.Private)
			fmt.Fprintln(cmd.OutOrStdout(), kp.Public)
			return nil
		},
	}
}
