/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operations

import (
	"context"
	"net"
	"os"
	"strings"
	"time"

	kitstatsd "github.com/go-kit/kit/metrics/statsd"
	"github.com/hyperledger/fabric-lib-go/healthz"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metadata"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics/disabled"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics/goruntime"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics/prometheus"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics/statsd"
)

type Statsd struct {
	Network       string
	Address       string
	WriteInterval time.Duration
	Prefix        string
}

type MetricsOptions struct {
	Provider string
	Statsd   *Statsd
}

type Options struct {
	Logger        Logger
	ListenAddress string
	Metrics       MetricsOptions
	Version       string
}

// System is the operations endpoint of the key generator. It owns the
// metrics provider handed to the engine and serves /metrics, /logspec,
// /healthz and /version.
type System struct {
	*Server
	metrics.Provider

	logger          Logger
	healthHandler   *healthz.HealthHandler
	options         Options
	registry        *prom.Registry
	statsd          *kitstatsd.Statsd
	collectorTicker *time.Ticker
	sendTicker      *time.Ticker
	versionGauge    metrics.Gauge
}

func NewSystem(o Options) *System {
	logger := o.Logger
	if logger == nil {
		logger = flogging.MustGetLogger("operations.runner")
	}
	if o.Version == "" {
		o.Version = metadata.Version
	}

	system := &System{
		Server:  newServer(logger, o.ListenAddress),
		logger:  logger,
		options: o,
	}

	system.initializeHealthCheckHandler()
	system.initializeLoggingHandler()
	system.initializeMetricsProvider()
	system.initializeVersionInfoHandler()

	return system
}

// Run implements ifrit.Runner and starts the metrics send loop along with
// the HTTP server.
func (s *System) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	err := s.Start()
	if err != nil {
		return err
	}

	close(ready)

	<-signals
	return s.Stop()
}

func (s *System) Start() error {
	err := s.startMetricsTickers()
	if err != nil {
		return err
	}

	s.versionGauge.With("version", s.options.Version).Set(1)

	return s.Server.Start()
}

func (s *System) Stop() error {
	if s.collectorTicker != nil {
		s.collectorTicker.Stop()
		s.collectorTicker = nil
	}
	if s.sendTicker != nil {
		s.sendTicker.Stop()
		s.sendTicker = nil
	}
	return s.Server.Stop()
}

// RegisterChecker adds a health checker reported under component on
// /healthz. Registering the same component twice is an error.
func (s *System) RegisterChecker(component string, checker healthz.HealthChecker) error {
	err := s.healthHandler.RegisterChecker(component, checker)
	if _, ok := err.(healthz.AlreadyRegisteredError); ok {
		// healthz.AlreadyRegisteredError cannot be printed: its Error method
		// formats its own receiver with %s.
		return errors.Errorf("health checker for %s is already registered", component)
	}
	return err
}

func (s *System) initializeMetricsProvider() {
	m := s.options.Metrics
	providerType := m.Provider
	switch providerType {
	case "statsd":
		prefix := ""
		if m.Statsd != nil {
			prefix = m.Statsd.Prefix
		}
		if prefix != "" && !strings.HasSuffix(prefix, ".") {
			prefix = prefix + "."
		}

		ks := kitstatsd.New(prefix, s)
		s.Provider = &statsd.Provider{Statsd: ks}
		s.statsd = ks

	case "prometheus":
		s.registry = prom.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.Provider = &prometheus.Provider{Registerer: s.registry}
		s.RegisterHandler("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	default:
		if providerType != "disabled" {
			s.logger.Warnf("Unknown provider type: %s; metrics disabled", providerType)
		}
		s.Provider = &disabled.Provider{}
	}

	s.versionGauge = s.Provider.NewGauge(versionOpts)
}

func (s *System) initializeLoggingHandler() {
	s.RegisterHandler("/logspec", &SpecHandler{Logging: flogging.Global, Logger: s.logger})
}

func (s *System) initializeHealthCheckHandler() {
	s.healthHandler = healthz.NewHealthHandler()
	s.RegisterHandler("/healthz", s.healthHandler)
}

func (s *System) initializeVersionInfoHandler() {
	s.RegisterHandler("/version", &VersionInfoHandler{
		Logger:    s.logger,
		CommitSHA: metadata.CommitSHA,
		Version:   s.options.Version,
	})
}

func (s *System) startMetricsTickers() error {
	if s.statsd == nil {
		return nil
	}

	opts := s.options.Metrics.Statsd
	if opts == nil || opts.WriteInterval <= 0 {
		return errors.New("statsd metrics require a positive write interval")
	}
	c, err := net.Dial(opts.Network, opts.Address)
	if err != nil {
		return err
	}
	c.Close()

	s.collectorTicker = time.NewTicker(opts.WriteInterval / 2)
	goCollector := goruntime.NewCollector(s.Provider)
	go goCollector.CollectAndPublish(s.collectorTicker.C)

	s.sendTicker = time.NewTicker(opts.WriteInterval)
	go s.statsd.SendLoop(context.TODO(), s.sendTicker.C, opts.Network, opts.Address)

	return nil
}
