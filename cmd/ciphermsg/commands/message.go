package commands

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ciphermsg/internal/config"
	"ciphermsg/internal/crypto"
	"ciphermsg/internal/domain"
)

var errNotDecoded = errors.New("not decoded")

// encode <recipient> <message>: encrypt message for recipient.
func encodeCmd(opts *rootOptions) *cobra.Command {
	var legacy bool
	cmd := &cobra.Command{
		Use:   "encode <recipient-pubkey-hex> <message>",
		Short: "Encrypt a message for a recipient",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requirePassphrase(); err != nil {
				return err
			}
			c, err := opts.wire.Codec(opts.passphrase)
			if err != nil {
				return err
			}
			defer c.Close()

			encode := c.Encode
			if legacy {
				encode = c.EncodeLegacy
			}
			env, err := encode(domain.Hex(args[0]), domain.Text(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatEnvelope(opts.wire.Config.Output, env))
			return nil
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "produce the hex-text envelope read by older peers")
	return cmd
}

// decode <sender> <envelope>: decrypt an envelope from sender.
func decodeCmd(opts *rootOptions) *cobra.Command {
	var legacy bool
	cmd := &cobra.Command{
		Use:   "decode <sender-pubkey-hex> <envelope>",
		Short: "Decrypt an envelope from a sender",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requirePassphrase(); err != nil {
				return err
			}
			env, err := parseEnvelope(opts.wire.Config.Output, args[1])
			if err != nil {
				return err
			}
			c, err := opts.wire.Codec(opts.passphrase)
			if err != nil {
				return err
			}
			defer c.Close()

			decode := c.Decode
			if legacy {
				decode = c.DecodeLegacy
			}
			out, err := decode(domain.Hex(args[0]), domain.Bytes(env))
			if err != nil {
				return err
			}
			if !out.Decoded {
				return errNotDecoded
			}
			w := cmd.OutOrStdout()
			if _, err := w.Write(out.Plaintext); err != nil {
				return err
			}
			_, err = fmt.Fprintln(w)
			return err
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "also accept the hex-text envelope sent by older peers")
	return cmd
}

func formatEnvelope(output string, env []byte) string {
	if output == config.OutputBase64 {
		return crypto.B64(env)
	}
	return hex.EncodeToString(env)
}

func parseEnvelope(output, s string) ([]byte, error) {
	if output == config.OutputBase64 {
		b, err := crypto.FromB64(s)
		if err != nil {
			return nil, fmt.Errorf("envelope is not base64: %w", err)
		}
		return b, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("envelope is not hex: %w", err)
	}
	return b, nil
}
