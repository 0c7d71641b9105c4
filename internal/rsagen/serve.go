/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsagen

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/sigmon"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
	floggingmetrics "github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging/metrics"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Runs the operations endpoint until interrupted.",
		Long: `Runs the operations endpoint, serving /metrics, /logspec, /healthz and
/version on Operations.ListenAddress until SIGINT or SIGTERM is received.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			if conf.Operations.ListenAddress == "" {
				return errors.New("Operations.ListenAddress must be set to serve the operations endpoint")
			}

			system := newOperationsSystem(conf)
			if err := system.RegisterChecker("keystore", &keystoreChecker{path: conf.Keystore.Path}); err != nil {
				return err
			}
			flogging.SetObserver(floggingmetrics.NewObserver(system))
			defer flogging.SetObserver(nil)

			logger.Infof("Serving operations endpoint on %s", conf.Operations.ListenAddress)
			process := ifrit.Invoke(sigmon.New(system, os.Interrupt, syscall.SIGTERM))
			return <-process.Wait()
		},
	}
}
