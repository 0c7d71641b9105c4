/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsagen

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/keystore"
)

func encryptCmd() *cobra.Command {
	var keyName string

	cmd := &cobra.Command{
		Use:   "encrypt [message]",
		Short: "Encrypts a message with a stored public key.",
		Long: `Encrypts a message with a stored public key. The message is read from
standard input when it is not given as an argument. Every code point of the
message is encrypted separately; the blocks are printed as space separated
decimal integers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			message, err := input(cmd, args)
			if err != nil {
				return err
			}

			ks, err := keystore.NewFileBasedKeyStore(conf.Keystore.Path, true)
			if err != nil {
				return err
			}
			pub, err := ks.LoadPublicKey(keyName)
			if err != nil {
				return err
			}

			blocks := pub.Encrypt(message)
			fields := make([]string, len(blocks))
			for i, b := range blocks {
				fields[i] = b.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fields, " "))
			return nil
		},
	}
	attachKeyFlag(cmd.Flags(), &keyName)

	return cmd
}

func decryptCmd() *cobra.Command {
	var keyName string

	cmd := &cobra.Command{
		Use:   "decrypt [blocks]",
		Short: "Decrypts ciphertext blocks with a stored private key.",
		Long: `Decrypts space separated ciphertext blocks, as printed by encrypt, with a
stored private key. The blocks are read from standard input when they are not
given as an argument.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			blocks, err := parseBlocks(text)
			if err != nil {
				return err
			}

			ks, err := keystore.NewFileBasedKeyStore(conf.Keystore.Path, true)
			if err != nil {
				return err
			}
			priv, err := ks.LoadPrivateKey(keyName)
			if err != nil {
				return err
			}

			plaintext, err := priv.Decrypt(blocks)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}
	attachKeyFlag(cmd.Flags(), &keyName)

	return cmd
}

// attachKeyFlag registers the required --key flag.
func attachKeyFlag(flags *pflag.FlagSet, keyName *string) {
	flags.StringVarP(keyName, "key", "k", "", "name of the key in the keystore")
	cobra.MarkFlagRequired(flags, "key")
}

// input returns the single positional argument or, without one, standard
// input stripped of its trailing line break.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "failed reading standard input")
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func parseBlocks(text string) ([]*big.Int, error) {
	fields := strings.Fields(text)
	blocks := make([]*big.Int, len(fields))
	for i, f := range fields {
		b, ok := new(big.Int).SetString(f, 10)
		if !ok || b.Sign() < 0 {
			return nil, errors.Errorf("invalid ciphertext block %q", f)
		}
		blocks[i] = b
	}
	return blocks, nil
}
