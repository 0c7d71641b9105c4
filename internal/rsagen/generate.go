/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsagen

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/bigmath"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/keystore"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
	"github.com/xxzx6uzm3/asymmetric-ciphers/internal/localconfig"
)

func generateCmd() *cobra.Command {
	var (
		profile string
		name    string
		count   int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates key pairs and writes them to the keystore.",
		Long: `Generates key pairs for a security profile and writes them to the keystore
as <name>.pub ("{e},{n}") and <name>_sk ("{d},{n}").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("profile") {
				conf.General.Profile = profile
			}
			if cmd.Flags().Changed("workers") {
				conf.General.Workers = workers
			}
			return generate(commandContext(cmd), cmd.OutOrStdout(), conf, name, count)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&profile, "profile", "p", "", "security profile to generate, overrides General.Profile")
	flags.StringVarP(&name, "name", "n", "", "key name, defaults to the lower case profile name")
	flags.IntVarP(&count, "count", "c", 1, "number of key pairs to generate")
	flags.IntVarP(&workers, "workers", "w", 0, "concurrent generations, overrides General.Workers")

	return cmd
}

// keyNames returns the keystore names for count key pairs. A single key
// pair is stored under name itself.
func keyNames(name string, count int) []string {
	if count == 1 {
		return []string{name}
	}
	names := make([]string, count)
	for i := range names {
		names[i] = fmt.Sprintf("%s-%d", name, i+1)
	}
	return names
}

func generate(ctx context.Context, out io.Writer, conf *localconfig.TopLevel, name string, count int) error {
	if count < 1 {
		return errors.Errorf("invalid count %d: at least one key pair must be generated", count)
	}
	profile, err := rsa.SelectProfile(conf.General.Profile)
	if err != nil {
		return err
	}
	if name == "" {
		name = strings.ToLower(profile.Name)
	}

	ks, err := keystore.NewFileBasedKeyStore(conf.Keystore.Path, conf.Keystore.ReadOnly)
	if err != nil {
		return err
	}
	if ks.ReadOnly() {
		return errors.Errorf("keystore %s is read only", conf.Keystore.Path)
	}

	names := keyNames(name, count)
	for _, n := range names {
		if err := keystore.ValidateName(n); err != nil {
			return err
		}
	}
	existing, err := ks.List()
	if err != nil {
		return err
	}
	for _, n := range names {
		if i := sort.SearchStrings(existing, n); i < len(existing) && existing[i] == n {
			return errors.Errorf("key %s already exists in %s", n, conf.Keystore.Path)
		}
	}

	provider, stop, err := startOperations(conf)
	if err != nil {
		return err
	}
	defer stop()

	if conf.General.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.General.Timeout)
		defer cancel()
	}

	logger.Infof("Generating %d %s key pair(s) with exponents in %s", count, profile.Name, conf.General.ExponentRange)
	gen := newGenerator(conf, provider)
	keys, weak, err := gen.BuildBatch(ctx, profile.Name, count, conf.General.Workers)
	if err != nil {
		return err
	}
	if weak {
		fmt.Fprintf(out, weakKeyWarning+"\n", profile.Name)
	}

	for i, kp := range keys {
		if err := ks.StoreKey(names[i], kp); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s key pair with a %d digit modulus and e=%s\n", names[i], profile.Name, bigmath.Digits(kp.N()), kp.E())
	}

	return nil
}
