/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsagen

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/keystore"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
)

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "Lists the supported security profiles.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "PROFILE\tDIGITS\tWEAK")
			for _, p := range rsa.Profiles() {
				fmt.Fprintf(w, "%s\t%d\t%t\n", p.Name, p.Digits, p.Weak)
			}
			return w.Flush()
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the key pairs in the keystore.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			ks, err := keystore.NewFileBasedKeyStore(conf.Keystore.Path, true)
			if err != nil {
				return err
			}
			names, err := ks.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Prints the effective configuration.",
		Long:  "Prints the effective configuration, rsagen.yaml and RSAGEN_* overrides applied over the defaults, as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			out, err := conf.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
