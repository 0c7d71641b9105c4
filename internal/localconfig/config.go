/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package localconfig

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/viperutil"
	"gopkg.in/yaml.v2"
)

var logger = flogging.MustGetLogger("localconfig")

// Prefix is the name of the configuration file and the environment
// variable prefix.
const Prefix = "rsagen"

// TopLevel directly corresponds to the rsagen.yaml document.
type TopLevel struct {
	General    General
	Keystore   Keystore
	Logging    Logging
	Metrics    Metrics
	Operations Operations
}

// General controls key generation.
type General struct {
	Profile             string
	ExponentRange       rsa.ExponentRange
	MaxPrimeAttempts    int
	MaxExponentAttempts int
	Workers             int
	Timeout             time.Duration
}

// Keystore locates the directory key pairs are written to.
type Keystore struct {
	Path     string
	ReadOnly bool
}

type Logging struct {
	Spec   string
	Format string
}

// Metrics selects the metrics provider: disabled, prometheus or statsd.
type Metrics struct {
	Provider string
	Statsd   Statsd
}

type Statsd struct {
	Network       string
	Address       string
	WriteInterval time.Duration
	Prefix        string
}

// Operations configures the HTTP endpoint serving metrics, health and the
// log spec. The endpoint is disabled when ListenAddress is empty.
type Operations struct {
	ListenAddress string
}

// Defaults are applied for every key missing from the configuration file.
var Defaults = TopLevel{
	General: General{
		Profile:             "RSA-1024",
		ExponentRange:       rsa.DefaultExponentRange,
		MaxPrimeAttempts:    0,
		MaxExponentAttempts: 1000,
		Workers:             4,
		Timeout:             10 * time.Minute,
	},
	Keystore: Keystore{
		Path: "keys",
	},
	Logging: Logging{
		Spec: "info",
	},
	Metrics: Metrics{
		Provider: "disabled",
		Statsd: Statsd{
			Network:       "udp",
			Address:       "127.0.0.1:8125",
			WriteInterval: 10 * time.Second,
			Prefix:        "rsagen",
		},
	},
}

func (c *TopLevel) completeInitialization() {
	for {
		switch {
		case c.General.ExponentRange == (rsa.ExponentRange{}):
			logger.Infof("General.ExponentRange unset, setting to %s", Defaults.General.ExponentRange)
			c.General.ExponentRange = Defaults.General.ExponentRange
		case c.General.Workers <= 0:
			logger.Infof("General.Workers unset, setting to %d", Defaults.General.Workers)
			c.General.Workers = Defaults.General.Workers
		case c.Keystore.Path == "":
			logger.Infof("Keystore.Path unset, setting to %s", Defaults.Keystore.Path)
			c.Keystore.Path = Defaults.Keystore.Path
		case c.Metrics.Provider == "":
			c.Metrics.Provider = Defaults.Metrics.Provider
		case c.Metrics.Provider == "statsd" && c.Metrics.Statsd.WriteInterval == 0:
			logger.Infof("Metrics.Statsd.WriteInterval unset, setting to %s", Defaults.Metrics.Statsd.WriteInterval)
			c.Metrics.Statsd.WriteInterval = Defaults.Metrics.Statsd.WriteInterval
		default:
			return
		}
	}
}

// Validate checks the values that cannot be repaired with a default.
func (c *TopLevel) Validate() error {
	if c.General.Profile != "" {
		if _, err := rsa.SelectProfile(c.General.Profile); err != nil {
			return errors.WithMessage(err, "invalid General.Profile")
		}
	}

	r := c.General.ExponentRange
	if r.Min < 2 || r.Max < r.Min {
		return errors.Errorf("invalid General.ExponentRange %s: need 2 <= min <= max", r)
	}
	if c.General.MaxPrimeAttempts < 0 || c.General.MaxExponentAttempts < 0 {
		return errors.New("attempt ceilings cannot be negative")
	}

	switch c.Metrics.Provider {
	case "disabled", "prometheus", "statsd":
	default:
		return errors.Errorf("unknown Metrics.Provider %q", c.Metrics.Provider)
	}

	if c.Logging.Spec != "" {
		ll := &flogging.LoggerLevels{}
		if err := ll.ActivateSpec(c.Logging.Spec); err != nil {
			return errors.WithMessage(err, "invalid Logging.Spec")
		}
	}
	return nil
}

// Load parses the rsagen.yaml file found on the configuration path and the
// RSAGEN_ environment over a copy of Defaults. A missing file is not an error.
func Load() (*TopLevel, error) {
	config := viper.New()
	viperutil.InitViper(config, Prefix)

	uconf := Defaults
	if err := viperutil.BindEnvKeys(config, &uconf); err != nil {
		return nil, err
	}

	err := config.ReadInConfig()
	switch err.(type) {
	case nil:
		logger.Infof("Loaded configuration from %s", config.ConfigFileUsed())
	case viper.ConfigFileNotFoundError:
		logger.Debugf("No %s.yaml found in %v, using defaults", Prefix, viperutil.ConfigPaths())
	default:
		return nil, errors.Wrapf(err, "error reading %s config", Prefix)
	}

	if err := viperutil.EnhancedExactUnmarshal(config, &uconf); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config into struct")
	}

	uconf.completeInitialization()
	if err := uconf.Validate(); err != nil {
		return nil, err
	}

	return &uconf, nil
}

// YAML renders the configuration in the rsagen.yaml layout.
func (c *TopLevel) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed encoding configuration")
	}
	return out, nil
}
