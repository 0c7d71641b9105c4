/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rsagen implements the rsagen command line: key generation into a
// keystore, encryption and decryption with stored keys, and the operations
// endpoint.
package rsagen

import (
	"context"
	"os"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tedsuo/ifrit"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
	floggingmetrics "github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging/metrics"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metadata"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics/disabled"
	"github.com/xxzx6uzm3/asymmetric-ciphers/internal/localconfig"
	"github.com/xxzx6uzm3/asymmetric-ciphers/internal/operations"
)

var logger = flogging.MustGetLogger("rsagen")

const weakKeyWarning = "the key size you have chosen (%s) can be easily cracked, don't use it for cryptographic issues."

// Cmd returns the rsagen root command with every subcommand attached.
func Cmd() *cobra.Command {
	mainCmd := &cobra.Command{
		Use:           metadata.ProgramName,
		Short:         "Textbook RSA key generation and encryption.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	mainCmd.AddCommand(profilesCmd())
	mainCmd.AddCommand(generateCmd())
	mainCmd.AddCommand(encryptCmd())
	mainCmd.AddCommand(decryptCmd())
	mainCmd.AddCommand(listCmd())
	mainCmd.AddCommand(configCmd())
	mainCmd.AddCommand(serveCmd())
	mainCmd.AddCommand(versionCmd())

	return mainCmd
}

// loadConfig reads rsagen.yaml and applies its logging section.
func loadConfig() (*localconfig.TopLevel, error) {
	conf, err := localconfig.Load()
	if err != nil {
		return nil, err
	}

	err = flogging.Global.Apply(flogging.Config{
		Format:  conf.Logging.Format,
		LogSpec: conf.Logging.Spec,
		Writer:  os.Stderr,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed initializing logging")
	}

	return conf, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newGenerator builds a key generator from the General section.
func newGenerator(conf *localconfig.TopLevel, provider metrics.Provider) *rsa.Generator {
	return &rsa.Generator{
		ExponentRange:       conf.General.ExponentRange,
		MaxPrimeAttempts:    conf.General.MaxPrimeAttempts,
		MaxExponentAttempts: conf.General.MaxExponentAttempts,
		Metrics:             rsa.NewMetrics(provider),
	}
}

func newOperationsSystem(conf *localconfig.TopLevel) *operations.System {
	return operations.NewSystem(operations.Options{
		ListenAddress: conf.Operations.ListenAddress,
		Metrics: operations.MetricsOptions{
			Provider: conf.Metrics.Provider,
			Statsd: &operations.Statsd{
				Network:       conf.Metrics.Statsd.Network,
				Address:       conf.Metrics.Statsd.Address,
				WriteInterval: conf.Metrics.Statsd.WriteInterval,
				Prefix:        conf.Metrics.Statsd.Prefix,
			},
		},
		Version: metadata.Version,
	})
}

// startOperations launches the operations endpoint when a listen address is
// configured and returns the metrics provider backing it. Without an
// endpoint metrics are disabled. The returned function stops the endpoint.
func startOperations(conf *localconfig.TopLevel) (metrics.Provider, func(), error) {
	if conf.Operations.ListenAddress == "" {
		logger.Debug("Operations.ListenAddress unset, operations endpoint disabled")
		return &disabled.Provider{}, func() {}, nil
	}

	system := newOperationsSystem(conf)
	if err := system.RegisterChecker("keystore", &keystoreChecker{path: conf.Keystore.Path}); err != nil {
		return nil, nil, err
	}

	process := ifrit.Invoke(system)
	select {
	case <-process.Ready():
	case err := <-process.Wait():
		return nil, nil, errors.WithMessage(err, "failed starting operations endpoint")
	}
	logger.Infof("Operations endpoint listening on %s", system.Addr())

	flogging.SetObserver(floggingmetrics.NewObserver(system))

	stop := func() {
		flogging.SetObserver(nil)
		process.Signal(syscall.SIGTERM)
		if err := <-process.Wait(); err != nil {
			logger.Warnf("Operations endpoint stopped with error: %s", err)
		}
	}
	return system, stop, nil
}
